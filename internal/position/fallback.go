package position

import (
	"log/slog"

	"github.com/KirkDiggler/layout-api/internal/errors"
)

type fallback struct {
	primary   Calculator
	secondary Calculator
	logger    *slog.Logger
}

// WithFallback runs primary and, when it errors or panics, logs the failure
// and returns secondary's result instead
func WithFallback(primary, secondary Calculator, logger *slog.Logger) Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &fallback{primary: primary, secondary: secondary, logger: logger}
}

func (f *fallback) Name() string {
	return f.primary.Name()
}

func (f *fallback) Calculate(in Input) (Result, error) {
	res, err := f.try(in)
	if err == nil {
		return res, nil
	}

	f.logger.Warn("position strategy failed, using fallback",
		"strategy", f.primary.Name(),
		"fallback", f.secondary.Name(),
		"element_id", in.Element.ID,
		"view", in.View,
		"error", err)

	return f.secondary.Calculate(in)
}

func (f *fallback) try(in Input) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Internalf("%s strategy panicked: %v", f.primary.Name(), r)
		}
	}()
	return f.primary.Calculate(in)
}
