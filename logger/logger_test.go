package logger

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New(Config{Level: "debug"}).WithFields(nil).Logger.GetLevel())
	assert.Equal(t, logrus.WarnLevel, New(Config{Level: "warn"}).WithFields(nil).Logger.GetLevel())
	assert.Equal(t, logrus.InfoLevel, New(Config{}).WithFields(nil).Logger.GetLevel())
	assert.Equal(t, logrus.InfoLevel, New(Config{Level: "nonsense"}).WithFields(nil).Logger.GetLevel())
}

func TestFieldHelpers(t *testing.T) {
	log := Discard()

	assert.Equal(t, "req-1", log.WithRequestID("req-1").Data["request_id"])
	assert.Equal(t, "oid-1", log.WithOrderID("oid-1").Data["order_id"])
	assert.Equal(t, io.ErrUnexpectedEOF, log.WithError(io.ErrUnexpectedEOF).Data[logrus.ErrorKey])
}

func TestDiscardWritesNothing(t *testing.T) {
	log := Discard()

	assert.Equal(t, io.Discard, log.WithFields(nil).Logger.Out)
}
