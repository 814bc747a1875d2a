package match

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type DispatchErrorSuite struct {
	suite.Suite
}

func TestDispatchErrorSuite(t *testing.T) {
	suite.Run(t, new(DispatchErrorSuite))
}

func (s *DispatchErrorSuite) TestMessage() {
	err := &DispatchError{Value: "test-value"}

	s.Assert().Equal("No pattern found for value: test-value", err.Error())
}

func (s *DispatchErrorSuite) TestIsErrNoPattern() {
	var err error = &DispatchError{Value: 1}

	s.Assert().ErrorIs(err, ErrNoPattern)
	s.Assert().False(errors.Is(errors.New("other"), ErrNoPattern))
}

func (s *DispatchErrorSuite) TestSurvivesWrapping() {
	wrapped := fmt.Errorf("render status: %w", &DispatchError{Value: 418})

	var de *DispatchError
	s.Require().ErrorAs(wrapped, &de)
	s.Assert().Equal(418, de.Value)
	s.Assert().ErrorIs(wrapped, ErrNoPattern)
}

type DescribeSuite struct {
	suite.Suite
}

func TestDescribeSuite(t *testing.T) {
	suite.Run(t, new(DescribeSuite))
}

type level string

type weekday int

func (d weekday) String() string { return [...]string{"Sunday", "Monday"}[d] }

type version struct{ major, minor int }

func (v version) String() string { return fmt.Sprintf("v%d.%d", v.major, v.minor) }

type node struct{ name string }

func (n *node) String() string { return n.name }

func (s *DescribeSuite) TestDescribe() {
	tests := map[string]struct {
		value any
		want  string
	}{
		"string":            {"hello", "hello"},
		"empty string":      {"", ""},
		"named string":      {level("debug"), "debug"},
		"int":               {42, "42"},
		"negative int":      {-1, "-1"},
		"int8":              {int8(-8), "-8"},
		"uint64":            {uint64(18446744073709551615), "18446744073709551615"},
		"float64":           {1.5, "1.5"},
		"whole float":       {float64(200), "200"},
		"float32":           {float32(0.1), "0.1"},
		"negative zero":     {math.Copysign(0, -1), "0"},
		"NaN":               {math.NaN(), "NaN"},
		"infinity":          {math.Inf(1), "Infinity"},
		"negative infinity": {math.Inf(-1), "-Infinity"},
		"large":             {1e21, "1e+21"},
		"below large":       {1e20, "100000000000000000000"},
		"small":             {1e-7, "1e-7"},
		"above small":       {0.000001, "0.000001"},
		"symbol":            {NewSymbol("test"), "Symbol(test)"},
		"empty symbol":      {NewSymbol(""), "Symbol()"},
		"zero symbol":       {Symbol{}, "Symbol()"},
		"string key":        {Str("42"), "42"},
		"number key":        {Num(42), "42"},
		"int with String":   {weekday(1), "1"},
		"duration":          {5 * time.Second, "5000000000"},
		"struct stringer":   {version{1, 2}, "v1.2"},
		"pointer stringer":  {&node{name: "root"}, "root"},
		"nil stringer":      {(*node)(nil), "<nil>"},
		"nil slice":         {[]int(nil), "<nil>"},
		"nil":               {nil, "<nil>"},
		"bool":              {true, "true"},
	}

	for name, tc := range tests {
		s.Run(name, func() {
			s.Assert().Equal(tc.want, describe(tc.value))
		})
	}
}

func (s *DescribeSuite) TestNumbersWithStringMethod() {
	_, err := Match(weekday(1), Cases[weekday, string]{}.Patterns())
	s.Require().Error(err)
	s.Assert().Equal("No pattern found for value: 1", err.Error())

	_, err = Match(5*time.Second, Cases[time.Duration, string]{}.Patterns())
	s.Require().Error(err)
	s.Assert().Equal("No pattern found for value: 5000000000", err.Error())
}

func (s *DescribeSuite) TestNilPointerScrutinee() {
	var n *node

	_, err := Match(n, Cases[*node, string]{}.Patterns())
	s.Require().Error(err)
	s.Assert().NotPanics(func() { _ = err.Error() })
	s.Assert().Equal("No pattern found for value: <nil>", err.Error())

	var keys []string
	tbl := NewTable(Cases[*node, string]{
		nil: func() string { return "empty tree" },
	}.Patterns(), WithOnSelect(func(key string, wildcard bool) {
		keys = append(keys, key)
	}))

	got, err := tbl.Dispatch(n)
	s.Require().NoError(err)
	s.Assert().Equal("empty tree", got)
	s.Assert().Equal([]string{"<nil>"}, keys)
}

func (s *DescribeSuite) TestDispatchErrorUsesDescribe() {
	err := &DispatchError{Value: NewSymbol("test")}

	s.Assert().Equal("No pattern found for value: Symbol(test)", err.Error())
}
