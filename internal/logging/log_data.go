package logging

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// LogData collects timings and fields over one request and emits them as a
// single entry. A nil *LogData is valid and discards everything.
type LogData struct {
	mutex     sync.Mutex
	timeItems map[string]int64
	dataItems logrus.Fields
	logger    *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timeItems: make(map[string]int64),
		dataItems: make(logrus.Fields),
		logger:    logger,
	}
}

func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the request's LogData, or nil outside a wrapped handler.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}

// AddTiming starts a timer; calling the result records elapsed milliseconds under entryName.
func (l *LogData) AddTiming(entryName string) func() {
	return l.timer(entryName, false)
}

// AddToExistingTiming is AddTiming that sums into entryName, for work done in several steps.
func (l *LogData) AddToExistingTiming(entryName string) func() {
	return l.timer(entryName, true)
}

func (l *LogData) timer(entryName string, accumulate bool) func() {
	if l == nil {
		return func() {}
	}
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.mutex.Lock()
		defer l.mutex.Unlock()
		if accumulate {
			l.timeItems[entryName] += elapsed
			return
		}
		l.timeItems[entryName] = elapsed
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	if l == nil {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.dataItems[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	if l == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()

	fields := make(logrus.Fields, len(l.dataItems)+len(l.timeItems))
	for key, value := range l.dataItems {
		fields[key] = value
	}
	for key, value := range l.timeItems {
		fields[key] = value
	}
	return logrus.NewEntry(l.logger).WithFields(fields)
}
