package cli

import (
	"github.com/ajikko/aji/share"
	"github.com/spf13/pflag"
)

// platformFlag validates the share platform as it is parsed
type platformFlag struct {
	IsSet bool
	Value share.Platform
}

// String implements pflag.Value.
func (f *platformFlag) String() string {
	return string(f.Value)
}

func (f *platformFlag) Set(value string) error {
	p, err := share.ParsePlatform(value)
	if err != nil {
		return err
	}
	f.Value = p
	f.IsSet = true
	return nil
}

func (f *platformFlag) Type() string {
	return "platform"
}

var _ pflag.Value = &platformFlag{}
