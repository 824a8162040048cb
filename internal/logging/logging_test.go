package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLevelAdjustsRuntimeLevel(t *testing.T) {
	t.Setenv("PAIID_LOG_LEVEL", "")

	SetLevel("debug")
	if root.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", root.GetLevel())
	}

	// Unknown levels leave the logger untouched.
	SetLevel("shouting")
	if root.GetLevel() != logrus.DebugLevel {
		t.Errorf("unknown level changed the logger to %v", root.GetLevel())
	}

	SetLevel("warn")
	if root.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", root.GetLevel())
	}
}

func TestSetLevelEnvOverrideWins(t *testing.T) {
	t.Setenv("PAIID_LOG_LEVEL", "error")

	SetLevel("error")
	before := root.GetLevel()
	SetLevel("debug")
	if root.GetLevel() != before {
		t.Errorf("SetLevel overrode PAIID_LOG_LEVEL: %v", root.GetLevel())
	}
}
