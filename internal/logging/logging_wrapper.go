package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		log.Infof("Handler.%v.Start", loggingName)

		logData := NewLogData(log)
		req = req.WithContext(WithLogData(req.Context(), logData))

		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// HumaLogData is chi middleware giving Huma handlers a LogData through the request context.
func HumaLogData(loggingName string, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logData := NewLogData(log)
			endTimer := logData.AddTiming("duration")

			next.ServeHTTP(w, req.WithContext(WithLogData(req.Context(), logData)))

			endTimer()
			logData.AddData("path", req.URL.Path)
			logData.AddData("method", req.Method)
			logData.Log().Infof("Handler.%v.Complete", loggingName)
		})
	}
}
