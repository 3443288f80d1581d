package vkdump

// HandlePolicy controls how opaque handles are rendered.
type HandlePolicy int

const (
	// HandleRedacted prints handles as an empty string.
	HandleRedacted HandlePolicy = iota
	// HandleAddress prints the raw handle value as a hex string.
	HandleAddress
)

func (p HandlePolicy) String() string {
	switch p {
	case HandleRedacted:
		return "redacted"
	case HandleAddress:
		return "address"
	default:
		return "HandlePolicy(?)"
	}
}

// UnknownExtensionPolicy controls what happens when a pNext chain carries a
// structure type with no registered printer.
type UnknownExtensionPolicy int

const (
	// UnknownExtensionFail aborts the dump with an *UnrecognizedExtensionTagError.
	UnknownExtensionFail UnknownExtensionPolicy = iota
	// UnknownExtensionPlaceholder prints {"<unknown extension tag N>": true}
	// and carries on.
	UnknownExtensionPlaceholder
)

func (p UnknownExtensionPolicy) String() string {
	switch p {
	case UnknownExtensionFail:
		return "fail"
	case UnknownExtensionPlaceholder:
		return "placeholder"
	default:
		return "UnknownExtensionPolicy(?)"
	}
}

const (
	DefaultIndent           = 4
	DefaultMaxArrayElements = 4096
	DefaultMaxDepth         = 64
)

type Options struct {
	Indent            int
	Handles           HandlePolicy
	UnknownExtensions UnknownExtensionPolicy
	MaxArrayElements  int
	MaxDepth          int
	Registry          *Registry
}

func DefaultOptions() Options {
	return Options{
		Indent:            DefaultIndent,
		Handles:           HandleRedacted,
		UnknownExtensions: UnknownExtensionFail,
		MaxArrayElements:  DefaultMaxArrayElements,
		MaxDepth:          DefaultMaxDepth,
	}
}

type Option func(*Options)

func WithIndent(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Indent = n
		}
	}
}

func WithHandlePolicy(p HandlePolicy) Option {
	return func(o *Options) { o.Handles = p }
}

func WithUnknownExtensionPolicy(p UnknownExtensionPolicy) Option {
	return func(o *Options) { o.UnknownExtensions = p }
}

// WithMaxArrayElements caps how many elements of any one array are printed.
// Values below 1 leave the default in place.
func WithMaxArrayElements(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxArrayElements = n
		}
	}
}

// WithMaxDepth caps the nesting depth of the output. Every pNext link nests
// one level deeper, so the cap also bounds the length of an extension chain:
// a chain of N links needs a depth of at least N+1. Values below 1 leave the
// default in place.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxDepth = n
		}
	}
}

// WithRegistry replaces the default registry used for pNext dispatch.
func WithRegistry(r *Registry) Option {
	return func(o *Options) { o.Registry = r }
}

// WithOptions overwrites every setting with o.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Registry == nil {
		o.Registry = defaultRegistry
	}
	if o.MaxArrayElements <= 0 {
		o.MaxArrayElements = DefaultMaxArrayElements
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Indent < 0 {
		o.Indent = DefaultIndent
	}
	return o
}
