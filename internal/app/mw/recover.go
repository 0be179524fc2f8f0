package mw

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/mtmgroup/dashboards-ui/logger"
	"github.com/mtmgroup/dashboards-ui/metric"
	"go.uber.org/zap"
)

func handleRecover(method string, recoverVal any) {
	metric.DebugRequestPanics.Inc()
	var err error
	switch x := recoverVal.(type) {
	case string:
		err = errors.New(x)
	case error:
		err = x
	default:
		err = fmt.Errorf("unknown panic: %v", x)
	}
	logger.Error("recovered after panic",
		zap.String("method", method),
		zap.String("stack_trace", string(debug.Stack())),
		zap.Error(err),
	)
}
