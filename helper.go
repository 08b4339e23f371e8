package logconfig

// Printf-style convenience forwarders to the shared logger. All are safe on
// a nil or unconstructed Service.

func (s *Service) Debugf(format string, args ...interface{}) {
	if s == nil || s.shared == nil {
		return
	}
	s.shared.Logger().Debug().Msgf(format, args...)
}

func (s *Service) Infof(format string, args ...interface{}) {
	if s == nil || s.shared == nil {
		return
	}
	s.shared.Logger().Info().Msgf(format, args...)
}

func (s *Service) Warnf(format string, args ...interface{}) {
	if s == nil || s.shared == nil {
		return
	}
	s.shared.Logger().Warn().Msgf(format, args...)
}

func (s *Service) Errorf(format string, args ...interface{}) {
	if s == nil || s.shared == nil {
		return
	}
	s.shared.Logger().Error().Msgf(format, args...)
}
