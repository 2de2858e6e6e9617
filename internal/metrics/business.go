package metrics

// IncrementRoundOpened counts a successful round transition
func (m *Metrics) IncrementRoundOpened() {
	m.safeExecute("IncrementRoundOpened", func() {
		m.RoundsOpenedTotal.Inc()
	})
}

func (m *Metrics) IncrementRoundClosed() {
	m.safeExecute("IncrementRoundClosed", func() {
		m.RoundsClosedTotal.Inc()
	})
}

func (m *Metrics) AddRoundsRepaired(n int) {
	m.safeExecute("AddRoundsRepaired", func() {
		m.RoundsRepairedTotal.Add(float64(n))
	})
}

// IncrementResponseSubmitted counts submits; created is false when an existing response was overwritten
func (m *Metrics) IncrementResponseSubmitted(created bool) {
	m.safeExecute("IncrementResponseSubmitted", func() {
		result := "updated"
		if created {
			result = "created"
		}
		m.ResponsesSubmittedTotal.WithLabelValues(result).Inc()
	})
}

// IncrementMembershipRedeemed counts redeem calls by result (joined, already_member, invalid_code)
func (m *Metrics) IncrementMembershipRedeemed(result string) {
	m.safeExecute("IncrementMembershipRedeemed", func() {
		m.MembershipsRedeemedTotal.WithLabelValues(result).Inc()
	})
}

func (m *Metrics) IncrementFeedbackSubmitted() {
	m.safeExecute("IncrementFeedbackSubmitted", func() {
		m.FeedbackSubmittedTotal.Inc()
	})
}

// IncrementSynthesisPushed counts pushes; an empty push is a retraction
func (m *Metrics) IncrementSynthesisPushed(retraction bool) {
	m.safeExecute("IncrementSynthesisPushed", func() {
		kind := "publish"
		if retraction {
			kind = "retract"
		}
		m.SynthesisPushedTotal.WithLabelValues(kind).Inc()
	})
}

func (m *Metrics) IncrementSynthesisGenerated(status string) {
	m.safeExecute("IncrementSynthesisGenerated", func() {
		m.SynthesisGeneratedTotal.WithLabelValues(status).Inc()
	})
}

func (m *Metrics) SetFormsTotal(count int64) {
	m.safeExecute("SetFormsTotal", func() {
		m.FormsTotal.Set(float64(count))
	})
}

func (m *Metrics) SetActiveRoundsTotal(count int64) {
	m.safeExecute("SetActiveRoundsTotal", func() {
		m.ActiveRoundsTotal.Set(float64(count))
	})
}
