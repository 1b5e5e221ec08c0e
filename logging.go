package aerocorp

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// NewCompanyLogger returns the default structured logger: logfmt
// key-value lines with a UTC timestamp, writing to stderr. Subsystems tag their lines with a
// "subsys" key so a log can be filtered by component without parsing
// message text.
func NewCompanyLogger() kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	return logger
}

func logDesign(logger kitlog.Logger, keyvals ...interface{}) {
	logger.Log(append([]interface{}{"subsys", "design"}, keyvals...)...)
}

func logManufacturing(logger kitlog.Logger, keyvals ...interface{}) {
	logger.Log(append([]interface{}{"subsys", "manufacturing"}, keyvals...)...)
}

func logMission(logger kitlog.Logger, keyvals ...interface{}) {
	logger.Log(append([]interface{}{"subsys", "mission"}, keyvals...)...)
}

func logFlight(logger kitlog.Logger, keyvals ...interface{}) {
	logger.Log(append([]interface{}{"subsys", "flight"}, keyvals...)...)
}

func logLaunch(logger kitlog.Logger, keyvals ...interface{}) {
	logger.Log(append([]interface{}{"subsys", "launch"}, keyvals...)...)
}
