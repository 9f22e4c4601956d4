package methods

type server struct {
	closed bool
}

func (s *server) serve(callback func(error)) {
	if s.closed {
		callback(nil)
		return
	}
	callback(nil)
}

func (s *server) shutdown(callback func(error)) {
	if !s.closed {
		callback(nil) // want "Expected return with your callback function."
	}
	s.closed = true
}

func (s *server) chained(callback func() func()) {
	callback()() // want "Expected return with your callback function."
}
