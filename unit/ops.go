package unit

type (
	binary struct {
		a, b Signal
		op   func(a, b float32) float32
	}

	mix struct {
		signals []Signal
	}
)

// Mul multiplies two signals.
func Mul(a, b Signal) Signal {
	return &binary{a: a, b: b, op: mul}
}

// Add sums two signals.
func Add(a, b Signal) Signal {
	return &binary{a: a, b: b, op: add}
}

// Gain scales the signal by a constant.
func Gain(s Signal, g float32) Signal {
	return Mul(s, Constant(g))
}

func mul(a, b float32) float32 { return a * b }

func add(a, b float32) float32 { return a + b }

func (s *binary) Init(c *Config) {
	s.a.Init(c)
	s.b.Init(c)
}

func (s *binary) Process() float32 {
	return s.op(s.a.Process(), s.b.Process())
}

func (s *binary) Set(tag Tag, value float64) {
	set(s.a, tag, value)
	set(s.b, tag, value)
}

func (s *binary) Get(tag Tag) (float64, bool) {
	if v, ok := get(s.a, tag); ok {
		return v, true
	}
	return get(s.b, tag)
}

// Mix sums all provided signals.
func Mix(signals ...Signal) Signal {
	return &mix{signals: signals}
}

func (s *mix) Init(c *Config) {
	for _, in := range s.signals {
		in.Init(c)
	}
}

func (s *mix) Process() float32 {
	var sum float32
	for _, in := range s.signals {
		sum += in.Process()
	}
	return sum
}

func (s *mix) Set(tag Tag, value float64) {
	for _, in := range s.signals {
		set(in, tag, value)
	}
}

func (s *mix) Get(tag Tag) (float64, bool) {
	for _, in := range s.signals {
		if v, ok := get(in, tag); ok {
			return v, true
		}
	}
	return 0, false
}
