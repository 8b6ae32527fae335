package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/disruptions/calendar"
	"github.com/theoremus-urban-solutions/disruptions/config"
	"github.com/theoremus-urban-solutions/disruptions/feed"
	"github.com/theoremus-urban-solutions/disruptions/formatter"
	"github.com/theoremus-urban-solutions/disruptions/internal"
	"github.com/theoremus-urban-solutions/disruptions/jsonapi"
	"github.com/theoremus-urban-solutions/disruptions/model"
	"github.com/theoremus-urban-solutions/disruptions/siri"
)

type options struct {
	configPath string
	input      string
	call       string
	view       string
	format     string
	query      string
	routes     string
	statuses   string
	past       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to config.yml (defaults to config.yml, ./config/config.yml)")
	flag.StringVar(&opts.input, "input", "-", "JSON:API document to read, - for stdin")
	flag.StringVar(&opts.call, "call", "calendar", "calendar|describe|revisions|ics|gtfsrt|sx")
	flag.StringVar(&opts.view, "view", "published", "draft|ready|published")
	flag.StringVar(&opts.format, "format", "json", "json|xml (sx), pb|text|json (gtfsrt)")
	flag.StringVar(&opts.query, "q", "", "search adjustment labels")
	flag.StringVar(&opts.routes, "routes", "", "comma-separated route filters, e.g. Red,Green-B,Commuter")
	flag.StringVar(&opts.statuses, "statuses", "", "comma-separated status filters: draft,ready,published")
	flag.BoolVar(&opts.past, "past", false, "include disruptions that already ended")
	flag.Parse()

	if opts.configPath != "" {
		if err := config.LoadAppConfig(opts.configPath); err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
	} else if err := config.LoadAppConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := internal.NewLogger(config.Config.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(opts, config.Config, logger, os.Stdout, time.Now()); err != nil {
		logger.Error("command failed", zap.String("call", opts.call), zap.Error(err))
		os.Exit(1)
	}
}

func run(opts options, cfg config.AppConfig, logger *zap.Logger, out io.Writer, now time.Time) error {
	view, err := model.ParseView(opts.view)
	if err != nil {
		return err
	}

	body, err := readInput(opts.input)
	if err != nil {
		return err
	}
	disruptions, revisions, err := resolve(body)
	if err != nil {
		if details := jsonapi.ErrorDetails(body); len(details) > 0 {
			return fmt.Errorf("backend returned errors: %s", strings.Join(details, "; "))
		}
		return err
	}
	logger.Info("resolved document",
		zap.String("input", opts.input),
		zap.Int("disruptions", len(disruptions)),
		zap.Int("revisions", len(revisions)),
	)

	statuses, err := model.ParseStatusFilters(splitList(opts.statuses))
	if err != nil {
		return err
	}
	filters := model.Filters{
		SearchQuery:   opts.query,
		Routes:        model.ParseRouteFilters(splitList(opts.routes)),
		Statuses:      statuses,
		Dates:         model.DateFilters{IncludePast: opts.past},
		PastThreshold: model.PastThreshold(now, cfg.Filters.PastThresholdDays),
	}
	selected := model.FilterDisruptions(disruptions, view, filters)
	for _, rev := range revisions {
		if filters.Match(rev) {
			selected = append(selected, rev)
		}
	}

	calOpts := calendar.Options{View: view, BasePath: cfg.Calendar.BasePath}
	loc := cfg.Export.Location()

	switch opts.call {
	case "calendar":
		events := calendar.Expand(activeOnly(selected), calOpts)
		logger.Info("expanded calendar", zap.Int("events", len(events)))
		return writeJSON(out, events)

	case "describe":
		type row struct {
			DisruptionID string `json:"disruption_id,omitempty"`
			RevisionID   string `json:"revision_id"`
			Status       string `json:"status"`
			Description  string `json:"description"`
		}
		rows := make([]row, 0, len(selected))
		for _, rev := range selected {
			rows = append(rows, row{
				DisruptionID: rev.DisruptionID,
				RevisionID:   rev.ID,
				Status:       rev.Status.String(),
				Description:  calendar.Describe(rev.DaysOfWeek),
			})
		}
		return writeJSON(out, rows)

	case "revisions":
		type row struct {
			DisruptionID string  `json:"disruption_id"`
			Published    *string `json:"published"`
			Ready        *string `json:"ready"`
			Draft        *string `json:"draft"`
		}
		rows := make([]row, 0, len(disruptions))
		for _, d := range disruptions {
			u := d.UniqueRevisions()
			rows = append(rows, row{DisruptionID: d.ID, Published: revisionID(u.Published), Ready: revisionID(u.Ready), Draft: revisionID(u.Draft)})
		}
		return writeJSON(out, rows)

	case "ics":
		events := calendar.Expand(activeOnly(selected), calOpts)
		_, err = io.WriteString(out, calendar.ToICS(events, "", now))
		return err

	case "gtfsrt":
		msg := feed.BuildAlerts(disruptions, feed.Options{
			Now:      now,
			Location: loc,
			Language: cfg.Export.Language,
			View:     view,
			BasePath: cfg.Calendar.BasePath,
			BaseURL:  cfg.Calendar.BaseURL,
		})
		logger.Info("built alerts feed", zap.Int("entities", len(msg.Entity)))
		return feed.Dump(out, msg, feed.Format(opts.format))

	case "sx":
		sx := siri.BuildSituationExchange(disruptions, siri.Options{
			Codespace: cfg.Export.AgencyID,
			Language:  cfg.Export.Language,
			Location:  loc,
			Now:       now,
			View:      view,
			BaseURL:   cfg.Calendar.BaseURL,
			BasePath:  cfg.Calendar.BasePath,
		})
		logger.Info("built situation exchange", zap.Int("situations", len(sx.Situations)))
		res := formatter.WrapSituationExchangeResponse(sx, now, cfg.Export.AgencyID)
		rb := formatter.NewResponseBuilder()
		var buf []byte
		switch opts.format {
		case "xml":
			buf = rb.BuildXML(res)
		case "json":
			if buf, err = rb.BuildJSON(res); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown sx format %q", opts.format)
		}
		_, err = out.Write(buf)
		return err

	default:
		return fmt.Errorf("unknown call %q", opts.call)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// resolve accepts disruption documents as well as bare revision documents
func resolve(body []byte) ([]*model.Disruption, []*model.DisruptionRevision, error) {
	result, err := model.ParseDocument(body)
	if err != nil {
		return nil, nil, err
	}
	var disruptions []*model.Disruption
	var revisions []*model.DisruptionRevision
	for _, item := range result.Items {
		switch v := item.(type) {
		case *model.Disruption:
			disruptions = append(disruptions, v)
		case *model.DisruptionRevision:
			revisions = append(revisions, v)
		default:
			return nil, nil, fmt.Errorf("unexpected top-level resource %T", item)
		}
	}
	return disruptions, revisions, nil
}

func activeOnly(revisions []*model.DisruptionRevision) []*model.DisruptionRevision {
	out := make([]*model.DisruptionRevision, 0, len(revisions))
	for _, rev := range revisions {
		if rev.IsActive {
			out = append(out, rev)
		}
	}
	return out
}

func revisionID(rev *model.DisruptionRevision) *string {
	if rev == nil {
		return nil
	}
	return &rev.ID
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func writeJSON(w io.Writer, v any) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
