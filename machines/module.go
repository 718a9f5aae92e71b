package machines

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
)

type Module struct {
	dscope.Module
}

type Load func(path string) (*Definition, error)

func (Module) Load(
	logger logs.Logger,
) Load {
	return func(path string) (*Definition, error) {
		lines, err := LoadLines(path)
		if err != nil {
			return nil, err
		}
		def, err := Parse(lines)
		if err != nil {
			return nil, err
		}
		logger.Debug("machine loaded",
			"path", path,
			"name", def.Config.Name,
			"init", def.Config.InitialState,
			"rules", def.Rules.Len(),
		)
		return def, nil
	}
}
