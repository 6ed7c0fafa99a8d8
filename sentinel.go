package jsoncol

import "math"

// ReinterpretSentinels wraps a Source so that string values matching the
// configured non-finite sentinels arrive as float events. Field keys are
// never rewritten. Without TreatSentinelStringsAsFloat the source is returned
// unchanged.
func ReinterpretSentinels(s Source, cfg SentinelConfig) Source {
	if !cfg.TreatSentinelStringsAsFloat {
		return s
	}
	return &sentinelSource{inner: s, cfg: cfg}
}

type sentinelSource struct {
	inner Source
	cfg   SentinelConfig
}

func (s *sentinelSource) NextEvent() (Event, error) {
	ev, err := s.inner.NextEvent()
	if err != nil || ev.Kind != EventString {
		return ev, err
	}
	if f, ok := s.cfg.floatFor(ev.String); ok {
		return Event{Kind: EventFloat64, Float: f, Offset: ev.Offset}, nil
	}
	return ev, nil
}

func (s *sentinelSource) Location() int64 { return s.inner.Location() }

// floatFor resolves s against the sentinels, first match in the order NaN,
// +Infinity, -Infinity.
func (c SentinelConfig) floatFor(s string) (float64, bool) {
	switch {
	case c.NaNString != nil && *c.NaNString == s:
		return math.NaN(), true
	case c.InfinityString != nil && *c.InfinityString == s:
		return math.Inf(1), true
	case c.MinusInfinityString != nil && *c.MinusInfinityString == s:
		return math.Inf(-1), true
	}
	return 0, false
}

// stringFor returns the sentinel spelling of a non-finite float.
func (c SentinelConfig) stringFor(f float64) (string, bool) {
	var p *string
	switch {
	case math.IsNaN(f):
		p = c.NaNString
	case math.IsInf(f, 1):
		p = c.InfinityString
	case math.IsInf(f, -1):
		p = c.MinusInfinityString
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// missingToken returns the string written for missing values, if any.
func (c SentinelConfig) missingToken() (string, bool) {
	switch {
	case c.MissingString != nil:
		return *c.MissingString, true
	case c.NaNString != nil:
		return *c.NaNString, true
	}
	return "", false
}
