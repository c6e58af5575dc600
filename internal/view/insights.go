package view

import (
	"sync"

	"insights-console-be/internal/entity"
	"insights-console-be/pkg/chart"
	"insights-console-be/pkg/viewstate"
)

type Insights struct {
	tracker viewstate.Tracker

	mu        sync.Mutex
	insights  []entity.Insight
	chartKind chart.Kind
	notice    string
	loaded    bool
}

func NewInsights() *Insights {
	return &Insights{chartKind: chart.KindBar}
}

func (v *Insights) Begin() viewstate.Token {
	return v.tracker.Begin()
}

// Resolve keeps the selected chart kind; only the data is replaced.
func (v *Insights) Resolve(tok viewstate.Token, insights []entity.Insight, notice string) bool {
	return v.tracker.Apply(tok, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.insights = append([]entity.Insight(nil), insights...)
		v.notice = notice
		v.loaded = true
	})
}

func (v *Insights) SetChartKind(k chart.Kind) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.chartKind = k
}

func (v *Insights) ChartKind() chart.Kind {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.chartKind
}

func (v *Insights) Insights() []entity.Insight {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]entity.Insight(nil), v.insights...)
}

func (v *Insights) Notice() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notice
}

func (v *Insights) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}
