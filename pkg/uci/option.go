package uci

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/akopachev/gryphon/pkg/variant"
)

type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

// Catalog is the ordered set of options an engine declares at startup.
// Names compare case-insensitively, as GUIs send them.
type Catalog []Option

func (c Catalog) Find(name string) Option {
	for _, opt := range c {
		if strings.EqualFold(opt.UciName(), name) {
			return opt
		}
	}
	return nil
}

func (c Catalog) Set(name, value string) error {
	var opt = c.Find(name)
	if opt == nil {
		return errors.Errorf("unknown option %q", name)
	}
	if err := opt.Set(value); err != nil {
		return errors.Wrapf(err, "option %q", opt.UciName())
	}
	return nil
}

func (c Catalog) UciStrings() []string {
	var lines = make([]string, 0, len(c))
	for _, opt := range c {
		lines = append(lines, opt.UciString())
	}
	return lines
}

type BoolOption struct {
	Name  string
	Value *bool
}

func (opt *BoolOption) UciName() string {
	return opt.Name
}

func (opt *BoolOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v",
		opt.Name, "check", *opt.Value)
}

func (opt *BoolOption) Set(s string) error {
	var v, err = strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*opt.Value = v
	return nil
}

type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) UciName() string {
	return opt.Name
}

func (opt *IntOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.Name, "spin", *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	var v, err = strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errors.Errorf("value %v outside [%v, %v]", v, opt.Min, opt.Max)
	}
	*opt.Value = v
	return nil
}

type StringOption struct {
	Name  string
	Value *string
}

func (opt *StringOption) UciName() string {
	return opt.Name
}

func (opt *StringOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v",
		opt.Name, "string", *opt.Value)
}

func (opt *StringOption) Set(s string) error {
	*opt.Value = s
	return nil
}

type ComboOption struct {
	Name  string
	Vars  []string
	Value *string
}

func (opt *ComboOption) UciName() string {
	return opt.Name
}

func (opt *ComboOption) UciString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "option name %v type %v default %v",
		opt.Name, "combo", *opt.Value)
	for _, v := range opt.Vars {
		fmt.Fprintf(&sb, " var %v", v)
	}
	return sb.String()
}

func (opt *ComboOption) Set(s string) error {
	for _, v := range opt.Vars {
		if v == s {
			*opt.Value = s
			return nil
		}
	}
	return errors.Errorf("value %q is not in the list", s)
}

// VariantOption builds the UCI_Variant combo from the registered catalog.
// Call after the store is fully populated.
func VariantOption(store *variant.Store, value *string) *ComboOption {
	return &ComboOption{
		Name:  "UCI_Variant",
		Vars:  store.GetKeys(),
		Value: value,
	}
}
