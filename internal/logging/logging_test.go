package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func TestLogData_Context(t *testing.T) {
	logger, _ := newBufferedLogger()
	assert.Nil(t, GetLogData(context.Background()))

	l := NewLogData(logger)
	ctx := WithLogData(context.Background(), l)
	assert.Same(t, l, GetLogData(ctx))
}

func TestLogData_LogIncludesDataAndTimings(t *testing.T) {
	logger, buf := newBufferedLogger()
	l := NewLogData(logger)
	l.AddData("accountID", 7)
	stop := l.AddTiming("createAccountMs")
	stop()

	l.Log().Info("done")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["loglevel"])
	assert.EqualValues(t, 7, line["accountID"])
	assert.Contains(t, line, "createAccountMs")
	assert.Contains(t, line, "requestID")
}

func TestTimed_NilLogData(t *testing.T) {
	assert.NotPanics(t, func() {
		Timed(nil, "x")()
	})
}

func TestSetLevel(t *testing.T) {
	logger, _ := newBufferedLogger()
	require.NoError(t, SetLevel(logger, "debug"))
	assert.Equal(t, logrus.DebugLevel, logger.Level)
	assert.Error(t, SetLevel(logger, "loud"))
	assert.Equal(t, logrus.DebugLevel, logger.Level)
}

func TestLoggingWrapper(t *testing.T) {
	logger, buf := newBufferedLogger()

	var seen *LogData
	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		seen = GetLogData(req.Context())
		assert.Same(t, logData, seen)
		w.WriteHeader(http.StatusTeapot)
		return errors.New("short and stout")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	require.NotNil(t, seen)
	assert.Contains(t, buf.String(), "Handler.Test.Error")
	assert.Contains(t, buf.String(), "short and stout")
}
