package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/disruptions/siri"
)

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// BuildXML serializes a SIRI response to XML
func (rb *responseBuilder) BuildXML(res *siri.SiriResponse) []byte {
	var b strings.Builder
	b.WriteString("<Siri xmlns=\"http://www.siri.org.uk/siri\" version=\"" + siri.Version + "\">")
	sd := res.Siri.ServiceDelivery
	b.WriteString("<ServiceDelivery>")
	writeElement(&b, "ResponseTimestamp", sd.ResponseTimestamp)
	writeElement(&b, "ProducerRef", sd.ProducerRef)
	for _, sx := range sd.SituationExchangeDelivery {
		writeSituationExchangeXML(&b, sx)
	}
	b.WriteString("</ServiceDelivery>")
	b.WriteString("</Siri>")
	return []byte(b.String())
}

func writeSituationExchangeXML(b *strings.Builder, sx siri.SituationExchangeDelivery) {
	b.WriteString("<SituationExchangeDelivery>")
	writeElement(b, "ResponseTimestamp", sx.ResponseTimestamp)
	if len(sx.Situations) > 0 {
		b.WriteString("<Situations>")
		for _, el := range sx.Situations {
			writeSituationXML(b, el)
		}
		b.WriteString("</Situations>")
	}
	b.WriteString("</SituationExchangeDelivery>")
}

func writeSituationXML(b *strings.Builder, el siri.PtSituationElement) {
	b.WriteString("<PtSituationElement>")
	// Order: CreationTime, ParticipantRef, SituationNumber, Version, Source, VersionedAtTime, Progress, ValidityPeriod, UndefinedReason, Severity, ReportType, Planned, Summary, Description, InfoLinks, Affects, Consequences
	writeElement(b, "CreationTime", el.CreationTime)
	writeElement(b, "ParticipantRef", el.ParticipantRef)
	writeElement(b, "SituationNumber", el.SituationNumber)
	if el.Version != nil {
		writeElement(b, "Version", strconv.Itoa(*el.Version))
	}
	if el.Source != nil && el.Source.SourceType != "" {
		b.WriteString("<Source>")
		writeElement(b, "SourceType", el.Source.SourceType)
		b.WriteString("</Source>")
	}
	writeElement(b, "VersionedAtTime", el.VersionedAtTime)
	writeElement(b, "Progress", el.Progress)
	for _, vp := range el.ValidityPeriod {
		b.WriteString("<ValidityPeriod>")
		writeElement(b, "StartTime", vp.StartTime)
		writeElement(b, "EndTime", vp.EndTime)
		b.WriteString("</ValidityPeriod>")
	}
	b.WriteString("<UndefinedReason/>")
	writeElement(b, "Severity", el.Severity)
	writeElement(b, "ReportType", el.ReportType)
	if el.Planned != nil {
		writeElement(b, "Planned", strconv.FormatBool(*el.Planned))
	}
	writeText(b, "Summary", el.Summary)
	writeText(b, "Description", el.Description)
	if len(el.InfoLinks) > 0 {
		b.WriteString("<InfoLinks>")
		for _, link := range el.InfoLinks {
			b.WriteString("<InfoLink>")
			writeElement(b, "Uri", link.Uri)
			writeText(b, "Label", link.Label)
			b.WriteString("</InfoLink>")
		}
		b.WriteString("</InfoLinks>")
	}
	if el.Affects != nil {
		writeAffectsXML(b, el.Affects)
	}
	if el.Consequences != nil && len(el.Consequences.Consequence) > 0 {
		b.WriteString("<Consequences>")
		for _, c := range el.Consequences.Consequence {
			b.WriteString("<Consequence>")
			writeElement(b, "Condition", c.Condition)
			writeElement(b, "Severity", c.Severity)
			if c.Advice != nil {
				b.WriteString("<Advice>")
				writeText(b, "Details", c.Advice.Details)
				b.WriteString("</Advice>")
			}
			if c.Blocking != nil {
				b.WriteString("<Blocking>")
				writeElement(b, "JourneyPlanner", strconv.FormatBool(c.Blocking.JourneyPlanner))
				writeElement(b, "RealTime", strconv.FormatBool(c.Blocking.RealTime))
				b.WriteString("</Blocking>")
			}
			b.WriteString("</Consequence>")
		}
		b.WriteString("</Consequences>")
	}
	b.WriteString("</PtSituationElement>")
}

func writeAffectsXML(b *strings.Builder, affects *siri.Affects) {
	b.WriteString("<Affects>")
	// Networks > AffectedNetwork > AffectedLine
	if affects.Networks != nil {
		b.WriteString("<Networks>")
		for _, network := range affects.Networks.AffectedNetwork {
			b.WriteString("<AffectedNetwork>")
			writeElement(b, "NetworkRef", network.NetworkRef)
			for _, line := range network.AffectedLine {
				b.WriteString("<AffectedLine>")
				writeElement(b, "LineRef", line.LineRef)
				writeText(b, "LineName", line.LineName)
				b.WriteString("</AffectedLine>")
			}
			b.WriteString("</AffectedNetwork>")
		}
		b.WriteString("</Networks>")
	}
	if affects.VehicleJourneys != nil {
		b.WriteString("<VehicleJourneys>")
		for _, vj := range affects.VehicleJourneys.AffectedVehicleJourney {
			b.WriteString("<AffectedVehicleJourney>")
			writeElement(b, "VehicleJourneyRef", vj.VehicleJourneyRef)
			writeElement(b, "LineRef", vj.LineRef)
			b.WriteString("</AffectedVehicleJourney>")
		}
		b.WriteString("</VehicleJourneys>")
	}
	b.WriteString("</Affects>")
}

// writeElement skips empty values
func writeElement(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("<" + name + ">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</" + name + ">")
}

func writeText(b *strings.Builder, name string, texts []siri.NaturalLanguageString) {
	for _, t := range texts {
		if t.Lang != "" {
			b.WriteString("<" + name + " xml:lang=\"" + xmlEscape(t.Lang) + "\">")
		} else {
			b.WriteString("<" + name + ">")
		}
		b.WriteString(xmlEscape(t.Text))
		b.WriteString("</" + name + ">")
	}
}

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
