package formatter

import (
	"time"

	"github.com/theoremus-urban-solutions/disruptions/siri"
)

// BuildServiceDelivery creates a standardized ServiceDelivery wrapper
// with ResponseTimestamp and ProducerRef (codespace)
func BuildServiceDelivery(timestamp time.Time, codespace string) siri.ServiceDelivery {
	if codespace == "" {
		codespace = "UNKNOWN"
	}

	return siri.ServiceDelivery{
		ResponseTimestamp: timestamp.UTC().Format(time.RFC3339),
		ProducerRef:       codespace,
	}
}

// WrapSituationExchangeResponse wraps a SX delivery in a complete SIRI response
func WrapSituationExchangeResponse(sx siri.SituationExchangeDelivery, timestamp time.Time, codespace string) *siri.SiriResponse {
	sd := BuildServiceDelivery(timestamp, codespace)
	sd.SituationExchangeDelivery = []siri.SituationExchangeDelivery{sx}

	return &siri.SiriResponse{
		Siri: siri.SiriServiceDelivery{
			ServiceDelivery: sd,
		},
	}
}
