package models

import "testing"

func TestOrderSideValid(t *testing.T) {
	if !SideBuy.Valid() || !SideSell.Valid() {
		t.Error("expected buy and sell to be valid sides")
	}
	if OrderSide("hold").Valid() {
		t.Error("expected 'hold' to be invalid")
	}
	if OrderSide("").Valid() {
		t.Error("expected empty side to be invalid")
	}
}

func TestOrderTypeValid(t *testing.T) {
	if !OrderMarket.Valid() || !OrderLimit.Valid() {
		t.Error("expected market and limit to be valid types")
	}
	if OrderType("stop").Valid() {
		t.Error("expected 'stop' to be invalid")
	}
}

func TestTradingModeValid(t *testing.T) {
	if !ModeLive.Valid() || !ModePaper.Valid() {
		t.Error("expected live and paper to be valid modes")
	}
	if TradingMode("demo").Valid() {
		t.Error("expected 'demo' to be invalid")
	}
}

func TestRiskToleranceValid(t *testing.T) {
	for _, r := range []RiskTolerance{RiskConservative, RiskModerate, RiskAggressive} {
		if !r.Valid() {
			t.Errorf("expected %q to be valid", r)
		}
	}
	if RiskTolerance("yolo").Valid() {
		t.Error("expected 'yolo' to be invalid")
	}
}
