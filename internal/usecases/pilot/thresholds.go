package pilot

import (
	"time"

	"github.com/vfg2006/finance-pilot-api/internal/config"
)

// Thresholds são os limiares do classificador. Valores zerados caem no padrão.
type Thresholds struct {
	ContainmentCeiling  float64
	SafeFloor           float64
	HighRatio           float64
	SafeRatio           float64
	RewardRatio         float64
	ImpulsiveMultiplier float64
	FollowedMultiplier  float64
	DebtWindowDays      int
	DebtPaymentDayCap   int
	WeekdayLookbackDays int
	SignalTimeout       time.Duration
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		ContainmentCeiling:  1000,
		SafeFloor:           3000,
		HighRatio:           0.7,
		SafeRatio:           0.5,
		RewardRatio:         0.4,
		ImpulsiveMultiplier: 1.4,
		FollowedMultiplier:  2,
		DebtWindowDays:      7,
		DebtPaymentDayCap:   28,
		WeekdayLookbackDays: 56,
		SignalTimeout:       5 * time.Second,
	}
}

// ThresholdsFromConfig sobrescreve os padrões com o que vier configurado
func ThresholdsFromConfig(cfg config.Pilot) Thresholds {
	t := DefaultThresholds()

	if cfg.ContainmentCeiling > 0 {
		t.ContainmentCeiling = cfg.ContainmentCeiling
	}
	if cfg.SafeFloor > 0 {
		t.SafeFloor = cfg.SafeFloor
	}
	if cfg.HighRatio > 0 {
		t.HighRatio = cfg.HighRatio
	}
	if cfg.SafeRatio > 0 {
		t.SafeRatio = cfg.SafeRatio
	}
	if cfg.RewardRatio > 0 {
		t.RewardRatio = cfg.RewardRatio
	}
	if cfg.ImpulsiveMultiplier > 0 {
		t.ImpulsiveMultiplier = cfg.ImpulsiveMultiplier
	}
	if cfg.FollowedMultiplier > 0 {
		t.FollowedMultiplier = cfg.FollowedMultiplier
	}
	if cfg.DebtWindowDays > 0 {
		t.DebtWindowDays = cfg.DebtWindowDays
	}
	if cfg.DebtPaymentDayCap > 0 {
		t.DebtPaymentDayCap = cfg.DebtPaymentDayCap
	}
	if cfg.WeekdayLookbackDays > 0 {
		t.WeekdayLookbackDays = cfg.WeekdayLookbackDays
	}
	if cfg.SignalTimeoutSeconds > 0 {
		t.SignalTimeout = time.Duration(cfg.SignalTimeoutSeconds) * time.Second
	}

	return t
}

// FollowedCeiling é o gasto máximo de ontem para considerar a contenção cumprida
func (t Thresholds) FollowedCeiling() float64 {
	return t.ContainmentCeiling * t.FollowedMultiplier
}
