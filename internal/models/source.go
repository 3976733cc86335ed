package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Source labels the payment channel of a transaction. Informational only;
// unknown names resolve to SourceOther.
type Source string

const (
	SourceWeChatPay    Source = "WECHAT_PAY"
	SourceAlipay       Source = "ALIPAY"
	SourceBankTransfer Source = "BANK_TRANSFER"
	SourceCreditCard   Source = "CREDIT_CARD"
	SourceDebitCard    Source = "DEBIT_CARD"
	SourceCash         Source = "CASH"
	SourceOctopus      Source = "OCTOPUS"
	SourceOther        Source = "OTHER"
)

var sourceTable = map[Source]string{
	SourceWeChatPay:    "WeChat Pay",
	SourceAlipay:       "Alipay",
	SourceBankTransfer: "Bank Transfer",
	SourceCreditCard:   "Credit Card",
	SourceDebitCard:    "Debit Card",
	SourceCash:         "Cash",
	SourceOctopus:      "Octopus Card",
	SourceOther:        "Other",
}

var sourceOrder = []Source{
	SourceWeChatPay, SourceAlipay, SourceBankTransfer, SourceCreditCard,
	SourceDebitCard, SourceCash, SourceOctopus, SourceOther,
}

// Sources returns all known payment sources in display order.
func Sources() []Source {
	out := make([]Source, len(sourceOrder))
	copy(out, sourceOrder)
	return out
}

// Valid reports whether s is part of the closed vocabulary.
func (s Source) Valid() bool {
	_, ok := sourceTable[s]
	return ok
}

// DisplayName returns the human-readable name for the source.
func (s Source) DisplayName() string {
	if display, ok := sourceTable[s]; ok {
		return display
	}
	return string(s)
}

func (s Source) String() string {
	return s.DisplayName()
}

// ParseSource resolves an upper-snake-case source name strictly.
func ParseSource(name string) (Source, error) {
	s := Source(strings.ToUpper(strings.TrimSpace(name)))
	if !s.Valid() {
		return SourceOther, fmt.Errorf("unknown source %q", name)
	}
	return s, nil
}

// SourceFromName resolves a source name leniently, falling back to
// SourceOther.
func SourceFromName(name string) Source {
	s, err := ParseSource(name)
	if err != nil {
		return SourceOther
	}
	return s
}

// SourceFromDisplayName resolves a display name case-insensitively, falling
// back to SourceOther.
func SourceFromDisplayName(text string) Source {
	for s, display := range sourceTable {
		if strings.EqualFold(display, text) {
			return s
		}
	}
	return SourceOther
}

// UnmarshalJSON resolves persisted source names leniently.
func (s *Source) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*s = SourceFromName(name)
	return nil
}
