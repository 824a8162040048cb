package backtest

import "testing"

func TestRSISignal(t *testing.T) {
	tests := []struct {
		rsi  float64
		want Signal
	}{
		{15, SignalBuy},
		{29.9, SignalBuy},
		{30, SignalNeutral},
		{50, SignalNeutral},
		{70, SignalNeutral},
		{70.1, SignalSell},
		{92, SignalSell},
	}
	for _, tt := range tests {
		if got := RSISignal(tt.rsi); got != tt.want {
			t.Errorf("RSISignal(%v) = %q, want %q", tt.rsi, got, tt.want)
		}
	}
}

func TestMACDSignal(t *testing.T) {
	if got := MACDSignal(0.8); got != SignalBuy {
		t.Errorf("positive histogram = %q", got)
	}
	if got := MACDSignal(-0.3); got != SignalSell {
		t.Errorf("negative histogram = %q", got)
	}
	if got := MACDSignal(0); got != SignalNeutral {
		t.Errorf("zero histogram = %q", got)
	}
}

func TestBollingerSignal(t *testing.T) {
	if got := BollingerSignal(-0.1); got != SignalBuy {
		t.Errorf("below lower band = %q", got)
	}
	if got := BollingerSignal(1.2); got != SignalSell {
		t.Errorf("above upper band = %q", got)
	}
	if got := BollingerSignal(0.5); got != SignalNeutral {
		t.Errorf("mid band = %q", got)
	}
}
