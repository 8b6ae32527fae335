package formatter_test

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/disruptions/formatter"
	"github.com/theoremus-urban-solutions/disruptions/siri"
)

func testResponse() *siri.SiriResponse {
	version := 3
	sx := siri.SituationExchangeDelivery{
		Version:           siri.Version,
		ResponseTimestamp: "2020-06-01T12:00:00Z",
		Situations: []siri.PtSituationElement{{
			CreationTime:    "2020-05-02T09:00:00Z",
			ParticipantRef:  "MBTA",
			SituationNumber: "MBTA:SituationNumber:1",
			Version:         &version,
			Source:          &siri.SituationSource{SourceType: "directReport"},
			Progress:        "open",
			ValidityPeriod:  []siri.ValidityPeriod{{StartTime: "2020-06-06T00:00:00Z", EndTime: "2020-06-08T00:00:00Z"}},
			Severity:        "noService",
			ReportType:      "general",
			Summary:         []siri.NaturalLanguageString{{Lang: "en", Text: "Alewife & Harvard <shuttle>"}},
			Affects: &siri.Affects{
				Networks: &siri.AffectedNetworks{AffectedNetwork: []siri.AffectedNetwork{{
					NetworkRef:   "MBTA:Network:MBTA",
					AffectedLine: []siri.AffectedLine{{LineRef: "MBTA:Line:Red"}},
				}}},
			},
			Consequences: &siri.Consequences{Consequence: []siri.Consequence{{Condition: "noService", Blocking: &siri.Blocking{JourneyPlanner: true}}}},
		}},
	}
	return formatter.WrapSituationExchangeResponse(sx, time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC), "MBTA")
}

// TestFormatter_SX_ToXML verifies SituationExchange responses are well-formed XML
// with the SIRI namespace and escaped text
func TestFormatter_SX_ToXML(t *testing.T) {
	rb := formatter.NewResponseBuilder()
	xmlBytes := rb.BuildXML(testResponse())

	if len(xmlBytes) == 0 {
		t.Fatal("XML output should not be empty")
	}
	xmlStr := string(xmlBytes)

	for _, want := range []string{
		"<Siri xmlns=\"http://www.siri.org.uk/siri\" version=\"2.0\">",
		"<ServiceDelivery><ResponseTimestamp>2020-06-01T12:00:00Z</ResponseTimestamp><ProducerRef>MBTA</ProducerRef>",
		"<SituationNumber>MBTA:SituationNumber:1</SituationNumber><Version>3</Version>",
		"<ValidityPeriod><StartTime>2020-06-06T00:00:00Z</StartTime><EndTime>2020-06-08T00:00:00Z</EndTime></ValidityPeriod>",
		"<Summary xml:lang=\"en\">Alewife &amp; Harvard &lt;shuttle&gt;</Summary>",
		"<AffectedLine><LineRef>MBTA:Line:Red</LineRef></AffectedLine>",
		"<Blocking><JourneyPlanner>true</JourneyPlanner><RealTime>false</RealTime></Blocking>",
	} {
		if !strings.Contains(xmlStr, want) {
			t.Errorf("XML should contain %s", want)
		}
	}

	// Verify the document parses
	decoder := xml.NewDecoder(strings.NewReader(xmlStr))
	for {
		_, err := decoder.Token()
		if err != nil {
			if err != io.EOF {
				t.Fatalf("XML is not well-formed: %v", err)
			}
			break
		}
	}
}

// TestFormatter_SX_ToJSON verifies the JSON envelope
func TestFormatter_SX_ToJSON(t *testing.T) {
	rb := formatter.NewResponseBuilder()
	jsonBytes, err := rb.BuildJSON(testResponse())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(jsonBytes, &decoded); err != nil {
		t.Fatalf("JSON should be valid: %v", err)
	}

	var res siri.SiriResponse
	if err := json.Unmarshal(jsonBytes, &res); err != nil {
		t.Fatalf("JSON should decode into a SiriResponse: %v", err)
	}
	sd := res.Siri.ServiceDelivery
	if sd.ProducerRef != "MBTA" {
		t.Errorf("expected ProducerRef MBTA, got %s", sd.ProducerRef)
	}
	if len(sd.SituationExchangeDelivery) != 1 || len(sd.SituationExchangeDelivery[0].Situations) != 1 {
		t.Fatalf("expected one situation, got %+v", sd.SituationExchangeDelivery)
	}
	if got := sd.SituationExchangeDelivery[0].Situations[0].Summary[0].Text; got != "Alewife & Harvard <shuttle>" {
		t.Errorf("unexpected summary %q", got)
	}
}

func TestBuildServiceDelivery_DefaultCodespace(t *testing.T) {
	sd := formatter.BuildServiceDelivery(time.Unix(0, 0), "")
	if sd.ProducerRef != "UNKNOWN" {
		t.Errorf("expected UNKNOWN, got %s", sd.ProducerRef)
	}
	if sd.ResponseTimestamp != "1970-01-01T00:00:00Z" {
		t.Errorf("unexpected timestamp %s", sd.ResponseTimestamp)
	}
}
