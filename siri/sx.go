package siri

// SituationExchangeDelivery represents the SIRI-SX delivery structure
// Subset of SIRI-SX following the Entur Nordic Profile
type SituationExchangeDelivery struct {
	Version           string               `json:"version,omitempty" xml:"version,attr,omitempty"`
	ResponseTimestamp string               `json:"ResponseTimestamp" xml:"ResponseTimestamp"`
	Situations        []PtSituationElement `json:"Situations" xml:"Situations>PtSituationElement"`
}

// PtSituationElement represents a single planned disruption
type PtSituationElement struct {
	CreationTime    string                  `json:"CreationTime" xml:"CreationTime"`
	ParticipantRef  string                  `json:"ParticipantRef" xml:"ParticipantRef"`
	SituationNumber string                  `json:"SituationNumber" xml:"SituationNumber"`
	Version         *int                    `json:"Version,omitempty" xml:"Version,omitempty"`
	Source          *SituationSource        `json:"Source,omitempty" xml:"Source,omitempty"`
	VersionedAtTime string                  `json:"VersionedAtTime,omitempty" xml:"VersionedAtTime,omitempty"`
	Progress        string                  `json:"Progress" xml:"Progress"` // open|closed
	ValidityPeriod  []ValidityPeriod        `json:"ValidityPeriod" xml:"ValidityPeriod"`
	Severity        string                  `json:"Severity,omitempty" xml:"Severity,omitempty"`
	ReportType      string                  `json:"ReportType" xml:"ReportType"` // general|incident
	Planned         *bool                   `json:"Planned,omitempty" xml:"Planned,omitempty"`
	Summary         []NaturalLanguageString `json:"Summary,omitempty" xml:"Summary,omitempty"`
	Description     []NaturalLanguageString `json:"Description,omitempty" xml:"Description,omitempty"`
	Affects         *Affects                `json:"Affects,omitempty" xml:"Affects,omitempty"`
	Consequences    *Consequences           `json:"Consequences,omitempty" xml:"Consequences,omitempty"`
	InfoLinks       []InfoLink              `json:"InfoLinks,omitempty" xml:"InfoLinks>InfoLink,omitempty"`
}

// SituationSource represents the source of the situation message
type SituationSource struct {
	SourceType string `json:"SourceType,omitempty" xml:"SourceType,omitempty"`
}

// ValidityPeriod represents a time period with start and optional end time
type ValidityPeriod struct {
	StartTime string `json:"StartTime" xml:"StartTime"`
	EndTime   string `json:"EndTime,omitempty" xml:"EndTime,omitempty"`
}

// NaturalLanguageString represents text with a language attribute
type NaturalLanguageString struct {
	Lang string `json:"lang,omitempty" xml:"lang,attr,omitempty"`
	Text string `json:"text" xml:",chardata"`
}

// InfoLink represents a URL with optional label
type InfoLink struct {
	Uri   string                  `json:"Uri" xml:"Uri"`
	Label []NaturalLanguageString `json:"Label,omitempty" xml:"Label,omitempty"`
}

// Affects represents the scope of the situation
type Affects struct {
	Networks        *AffectedNetworks        `json:"Networks,omitempty" xml:"Networks,omitempty"`
	VehicleJourneys *AffectedVehicleJourneys `json:"VehicleJourneys,omitempty" xml:"VehicleJourneys,omitempty"`
}

// AffectedNetworks represents affected networks
type AffectedNetworks struct {
	AffectedNetwork []AffectedNetwork `json:"AffectedNetwork" xml:"AffectedNetwork"`
}

// AffectedNetwork represents an affected network
type AffectedNetwork struct {
	NetworkRef   string         `json:"NetworkRef,omitempty" xml:"NetworkRef,omitempty"`
	AffectedLine []AffectedLine `json:"AffectedLine,omitempty" xml:"AffectedLine,omitempty"`
}

// AffectedLine represents an affected line/route
type AffectedLine struct {
	LineRef  string                  `json:"LineRef" xml:"LineRef"`
	LineName []NaturalLanguageString `json:"LineName,omitempty" xml:"LineName,omitempty"`
}

// AffectedVehicleJourneys represents affected vehicle journeys
type AffectedVehicleJourneys struct {
	AffectedVehicleJourney []AffectedVehicleJourney `json:"AffectedVehicleJourney" xml:"AffectedVehicleJourney"`
}

// AffectedVehicleJourney represents an affected vehicle journey
type AffectedVehicleJourney struct {
	VehicleJourneyRef string `json:"VehicleJourneyRef,omitempty" xml:"VehicleJourneyRef,omitempty"`
	LineRef           string `json:"LineRef,omitempty" xml:"LineRef,omitempty"`
}

// Consequences represents the consequences of a situation
type Consequences struct {
	Consequence []Consequence `json:"Consequence" xml:"Consequence"`
}

// Consequence represents a single consequence
type Consequence struct {
	Condition string    `json:"Condition,omitempty" xml:"Condition,omitempty"`
	Severity  string    `json:"Severity,omitempty" xml:"Severity,omitempty"`
	Advice    *Advice   `json:"Advice,omitempty" xml:"Advice,omitempty"`
	Blocking  *Blocking `json:"Blocking,omitempty" xml:"Blocking,omitempty"`
}

// Advice represents advice for passengers
type Advice struct {
	Details []NaturalLanguageString `json:"Details,omitempty" xml:"Details,omitempty"`
}

// Blocking represents blocking information
type Blocking struct {
	JourneyPlanner bool `json:"JourneyPlanner,omitempty" xml:"JourneyPlanner,omitempty"`
	RealTime       bool `json:"RealTime,omitempty" xml:"RealTime,omitempty"`
}
