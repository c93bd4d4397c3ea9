package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/zonops/zonops/domain/model"
)

// recordTypeValue is a pflag.Value validating --type against the closed set
// of supported record types.
type recordTypeValue struct {
	t *model.RecordType
}

var _ pflag.Value = (*recordTypeValue)(nil)

func newRecordTypeValue(p *model.RecordType) *recordTypeValue {
	return &recordTypeValue{t: p}
}

func (v *recordTypeValue) String() string {
	if v.t == nil {
		return ""
	}
	return string(*v.t)
}

func (v *recordTypeValue) Set(s string) error {
	t, err := model.ParseRecordType(strings.ToUpper(s))
	if err != nil {
		return err
	}
	*v.t = t
	return nil
}

func (v *recordTypeValue) Type() string { return "recordType" }
