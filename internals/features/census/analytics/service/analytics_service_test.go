// file: internals/features/census/analytics/service/analytics_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcPercent(t *testing.T) {
	cases := []struct {
		name  string
		part  int64
		total int64
		want  float64
	}{
		{"penyebut sifar", 5, 0, 0},
		{"separuh", 1, 2, 50},
		{"satu pertiga dibundarkan", 1, 3, 33.3},
		{"dua pertiga dibundarkan", 2, 3, 66.7},
		{"penuh", 7, 7, 100},
		{"sifar", 0, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, CalcPercent(tc.part, tc.total), 0.001)
		})
	}
}

func f(v float64) *float64 { return &v }

func TestBandForIncome(t *testing.T) {
	cases := []struct {
		name   string
		income *float64
		want   string
	}{
		{"nil tidak dinyatakan", nil, BandUnspecified},
		{"sifar tidak dinyatakan", f(0), BandUnspecified},
		{"bawah 1000", f(999.99), BandBelow1000},
		{"tepat 1000", f(1000), Band1000To2000},
		{"tepat 2000", f(2000), Band1000To2000},
		{"2000.01 naik jalur", f(2000.01), Band2001To3000},
		{"tepat 3000", f(3000), Band2001To3000},
		{"tepat 5000", f(5000), Band3001To5000},
		{"atas 5000", f(5000.01), BandAbove5000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BandForIncome(tc.income))
		})
	}
}

// setiap pendapatan mesti jatuh tepat ke satu jalur dalam senarai tetap
func TestIncomeBandsCoverAllValues(t *testing.T) {
	known := map[string]bool{}
	for _, b := range IncomeBands {
		known[b] = true
	}
	for _, v := range []*float64{nil, f(0), f(500), f(1500), f(2500), f(4000), f(9999)} {
		assert.True(t, known[BandForIncome(v)])
	}
}
