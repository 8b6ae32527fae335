// Package feed publishes disruptions as a GTFS-Realtime Alerts feed.
package feed
