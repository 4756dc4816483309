package descriptor

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"go.viam.com/planardart/logging"
)

// A Constructor creates a descriptor from a validated config.
type Constructor func(conf *Config, logger logging.Logger) Descriptor

// A Registration stores construction info for a descriptor kind.
type Registration struct {
	Constructor Constructor
}

var (
	registryMu sync.RWMutex
	registry   = map[Kind]Registration{}
)

// Register registers a descriptor kind. It panics if the kind is registered twice or the
// registration has no constructor.
func Register(kind Kind, reg Registration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, old := registry[kind]; old {
		panic(errors.Errorf("trying to register two descriptors with same kind: %s", kind))
	}
	if reg.Constructor == nil {
		panic(errors.Errorf("cannot register a nil constructor for kind: %s", kind))
	}
	registry[kind] = reg
}

// RegisteredKinds returns every registered kind in lexical order.
func RegisteredKinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]Kind, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// New returns a descriptor of the given kind. A nil conf selects DefaultConfig and a nil logger
// discards diagnostics.
func New(kind Kind, conf *Config, logger logging.Logger) (Descriptor, error) {
	registryMu.RLock()
	reg, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Errorf("unknown descriptor kind %q", kind)
	}

	if conf == nil {
		conf = DefaultConfig()
	}
	if err := conf.Validate(string(kind)); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewBlankLogger("descriptor")
	}
	confCopy := *conf
	return reg.Constructor(&confCopy, logger.Sublogger(string(kind))), nil
}
