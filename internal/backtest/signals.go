package backtest

// Signal classifies an indicator reading for the results panel.
type Signal string

const (
	SignalBuy     Signal = "buy"
	SignalSell    Signal = "sell"
	SignalNeutral Signal = "neutral"
)

// RSI thresholds for oversold and overbought readings.
const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0
)

// RSISignal classifies a 0-100 RSI reading: oversold below 30 reads as
// a buy, overbought above 70 as a sell.
func RSISignal(rsi float64) Signal {
	switch {
	case rsi < rsiOversold:
		return SignalBuy
	case rsi > rsiOverbought:
		return SignalSell
	default:
		return SignalNeutral
	}
}

// MACDSignal classifies a MACD histogram value by its sign.
func MACDSignal(histogram float64) Signal {
	switch {
	case histogram > 0:
		return SignalBuy
	case histogram < 0:
		return SignalSell
	default:
		return SignalNeutral
	}
}

// Bollinger %B thresholds: below the lower band reads as a buy, above
// the upper band as a sell.
const (
	bollingerLower = 0.0
	bollingerUpper = 1.0
)

// BollingerSignal classifies a Bollinger %B reading.
func BollingerSignal(percentB float64) Signal {
	switch {
	case percentB < bollingerLower:
		return SignalBuy
	case percentB > bollingerUpper:
		return SignalSell
	default:
		return SignalNeutral
	}
}
