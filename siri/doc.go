// Package siri defines SIRI (Service Interface for Real-time Information) Situation
// Exchange types and builds them from disruptions.
//
// SIRI is a European standard (CEN/TS 15531) for real-time public transport information.
// Each disruption becomes one PtSituationElement whose validity periods are the
// windows in which its schedule applies.
//
// All types include JSON and XML struct tags for serialization.
package siri
