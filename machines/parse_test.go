package machines

import (
	"errors"
	"strings"
	"testing"
)

func TestIsProperty(t *testing.T) {
	if !IsProperty("init: q0") {
		t.Fatal()
	}
	if !IsProperty("name : My Machine") {
		t.Fatal()
	}
	if IsProperty("q0,1") {
		t.Fatal()
	}
	if IsProperty("") {
		t.Fatal()
	}
}

func TestParseConfig(t *testing.T) {

	t.Run("round trip", func(t *testing.T) {
		config, err := ParseConfig([]string{
			"name: T",
			"init: q0",
			"accept: qA",
		})
		if err != nil {
			t.Fatal(err)
		}
		if config.Name != "T" {
			t.Fatalf("got %q", config.Name)
		}
		if config.InitialState != "q0" {
			t.Fatalf("got %q", config.InitialState)
		}
		if len(config.AcceptStates) != 1 || config.AcceptStates[0] != "qA" {
			t.Fatalf("got %v", config.AcceptStates)
		}
	})

	t.Run("default name", func(t *testing.T) {
		config, err := ParseConfig([]string{
			"init: q0",
			"accept: qA, qB",
		})
		if err != nil {
			t.Fatal(err)
		}
		if config.Name != DefaultName {
			t.Fatalf("got %q", config.Name)
		}
		if len(config.AcceptStates) != 2 || config.AcceptStates[1] != "qB" {
			t.Fatalf("got %v", config.AcceptStates)
		}
	})

	t.Run("case insensitive keys", func(t *testing.T) {
		config, err := ParseConfig([]string{
			"INIT: q0",
			"Accept: qA",
		})
		if err != nil {
			t.Fatal(err)
		}
		if config.InitialState != "q0" {
			t.Fatalf("got %q", config.InitialState)
		}
	})

	t.Run("accept entries kept as given", func(t *testing.T) {
		config, err := ParseConfig([]string{
			"init: q0",
			"accept: qA, qA, ",
		})
		if err != nil {
			t.Fatal(err)
		}
		// duplicates and empty entries are not cleaned up
		if len(config.AcceptStates) != 3 || config.AcceptStates[2] != "" {
			t.Fatalf("got %v", config.AcceptStates)
		}
	})

	t.Run("too few properties", func(t *testing.T) {
		_, err := ParseConfig([]string{
			"init: q0",
		})
		var configErr *ConfigError
		if !errors.As(err, &configErr) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("too many properties", func(t *testing.T) {
		_, err := ParseConfig([]string{
			"name: a",
			"name: b",
			"init: q0",
			"accept: qA",
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unknown property", func(t *testing.T) {
		_, err := ParseConfig([]string{
			"init: q0",
			"reject: qR",
		})
		if err == nil || !strings.Contains(err.Error(), "unknown property") {
			t.Fatalf("got %v", err)
		}
		var configErr *ConfigError
		if !errors.As(err, &configErr) {
			t.Fatal()
		}
		if configErr.Line != "reject: qR" {
			t.Fatalf("got %q", configErr.Line)
		}
	})

	t.Run("missing init", func(t *testing.T) {
		_, err := ParseConfig([]string{
			"name: T",
			"accept: qA",
		})
		if err == nil || !strings.Contains(err.Error(), "initial state") {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("missing accept", func(t *testing.T) {
		_, err := ParseConfig([]string{
			"name: T",
			"init: q0",
		})
		if err == nil || !strings.Contains(err.Error(), "accept state") {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("value may contain separator", func(t *testing.T) {
		config, err := ParseConfig([]string{
			"name: a:b",
			"init: q0",
			"accept: qA",
		})
		if err != nil {
			t.Fatal(err)
		}
		if config.Name != "a:b" {
			t.Fatalf("got %q", config.Name)
		}
	})
}

func TestParseRules(t *testing.T) {

	t.Run("basic", func(t *testing.T) {
		rules, err := ParseRules([]string{
			"q0, 1",
			"q0, 1, >",
			"q0, _",
			"qA, _, -",
		})
		if err != nil {
			t.Fatal(err)
		}
		if rules.Len() != 2 {
			t.Fatalf("got %d", rules.Len())
		}

		rule, ok := rules.Match("q0", '1')
		if !ok {
			t.Fatal()
		}
		if rule.NewState != "q0" || rule.WriteSymbol != '1' || rule.Move != MoveRight {
			t.Fatalf("got %+v", rule)
		}

		rule, ok = rules.Match("q0", '_')
		if !ok {
			t.Fatal()
		}
		if rule.NewState != "qA" || rule.Move != Stay {
			t.Fatalf("got %+v", rule)
		}

		if _, ok := rules.Match("q0", '0'); ok {
			t.Fatal()
		}
	})

	t.Run("property lines are skipped", func(t *testing.T) {
		rules, err := ParseRules([]string{
			"init: q0",
			"q0, a",
			"accept: qA",
			"q1, b, <",
		})
		if err != nil {
			t.Fatal(err)
		}
		if rules.Len() != 1 {
			t.Fatalf("got %d", rules.Len())
		}
	})

	t.Run("no transitions", func(t *testing.T) {
		_, err := ParseRules([]string{
			"init: q0",
		})
		if err == nil || !strings.Contains(err.Error(), "no transitions") {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("odd line count", func(t *testing.T) {
		_, err := ParseRules([]string{
			"q0, a",
			"q1, b, <",
			"q1, b",
		})
		if err == nil || !strings.Contains(err.Error(), "wrong number of lines") {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("multi char read symbol", func(t *testing.T) {
		_, err := ParseRules([]string{
			"q0, ab",
			"q1, b, <",
		})
		if err == nil || !strings.Contains(err.Error(), "read symbol") {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("multi rune glyph rejected", func(t *testing.T) {
		// "e" plus a combining acute renders as one glyph, but is two code points
		_, err := ParseRules([]string{
			"q0, e\u0301",
			"q1, b, <",
		})
		if err == nil || !strings.Contains(err.Error(), "read symbol") {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("single rune unicode symbol accepted", func(t *testing.T) {
		rules, err := ParseRules([]string{
			"q0, é",
			"q1, ö, <",
		})
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := rules.Match("q0", 'é'); !ok {
			t.Fatal()
		}
	})

	t.Run("multi char write symbol", func(t *testing.T) {
		_, err := ParseRules([]string{
			"q0, a",
			"q1, bb, <",
		})
		if err == nil || !strings.Contains(err.Error(), "write symbol") {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("bad direction", func(t *testing.T) {
		_, err := ParseRules([]string{
			"q0, a",
			"q1, b, X",
		})
		if err == nil || !strings.Contains(err.Error(), "invalid direction") {
			t.Fatalf("got %v", err)
		}
		var configErr *ConfigError
		if !errors.As(err, &configErr) {
			t.Fatal()
		}
	})

	t.Run("wrong field counts", func(t *testing.T) {
		_, err := ParseRules([]string{
			"q0",
			"q1, b, <",
		})
		if err == nil {
			t.Fatal("expected error")
		}
		_, err = ParseRules([]string{
			"q0, a",
			"q1, b",
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestParse(t *testing.T) {
	def, err := Parse([]string{
		"name: Unary Counter",
		"init: q0",
		"accept: qA",
		"q0, 1",
		"q0, 1, >",
		"q0, _",
		"qA, _, -",
	})
	if err != nil {
		t.Fatal(err)
	}
	if def.Config.Name != "Unary Counter" {
		t.Fatalf("got %q", def.Config.Name)
	}
	if def.Rules.Len() != 2 {
		t.Fatalf("got %d", def.Rules.Len())
	}
}

func TestParseDirection(t *testing.T) {
	for token, expected := range map[string]Direction{
		"<": MoveLeft,
		">": MoveRight,
		"-": Stay,
	} {
		d, err := ParseDirection(token)
		if err != nil {
			t.Fatal(err)
		}
		if d != expected {
			t.Fatalf("got %v", d)
		}
		if d.String() != token {
			t.Fatalf("got %q", d.String())
		}
	}
	if _, err := ParseDirection("^"); err == nil {
		t.Fatal("expected error")
	}
}
