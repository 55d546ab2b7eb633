package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Field names shared by handlers, services and operator actions.
const (
	FieldUserID     = "userID"
	FieldDebtID     = "debtID"
	FieldDebtCount  = "debtCount"
	FieldStrategy   = "strategy"
	FieldOutcome    = "outcome"
	FieldMonths     = "months"
	FieldCacheHit   = "cacheHit"
	FieldAction     = "action"
	FieldPrediction = "predictionID"
)

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
	}

	return &logger
}

// SetLevel applies a textual level to logger and to the logrus standard
// logger, which services log through.
func SetLevel(logger *logrus.Logger, level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(parsed)
	logrus.SetLevel(parsed)
	logrus.SetFormatter(logger.Formatter)
	return nil
}
