package archaicfs

import (
	"strings"
)

// WriteOptions is the set of flags accepted by WriteToFile. Exactly one of
// Truncate and Append picks the mutation mode; Create and CreateIfNotExists
// pick the existence policy and may not be combined.
type WriteOptions uint8

const (
	Create WriteOptions = 1 << iota
	CreateIfNotExists
	Truncate
	Append
)

var writeOptionNames = []struct {
	option WriteOptions
	name   string
}{
	{Create, "create"},
	{CreateIfNotExists, "create-if-not-exists"},
	{Truncate, "truncate"},
	{Append, "append"},
}

func (o WriteOptions) Has(option WriteOptions) bool {
	return o&option == option
}

// Validate reports whether the set describes exactly one write.
func (o WriteOptions) Validate() error {
	if err := o.validate(); err != nil {
		return err
	}
	return nil
}

func (o WriteOptions) validate() *Error {
	if o.Has(Truncate) == o.Has(Append) {
		return newError(KindInvalidArgument, "", "", "exactly one of truncate or append is required")
	}

	if o.Has(Create) && o.Has(CreateIfNotExists) {
		return newError(KindInvalidArgument, "", "", "create and create-if-not-exists are mutually exclusive")
	}

	if o&^(Create|CreateIfNotExists|Truncate|Append) != 0 {
		return newError(KindInvalidArgument, "", "", "unrecognized write option")
	}

	return nil
}

func (o WriteOptions) String() string {
	names := make([]string, 0, len(writeOptionNames))
	for _, n := range writeOptionNames {
		if o.Has(n.option) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseWriteOption accepts the names printed by String, case-insensitively
// and with "_" in place of "-".
func ParseWriteOption(name string) (WriteOptions, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, n := range writeOptionNames {
		if n.name == normalized {
			return n.option, nil
		}
	}
	return 0, newError(KindInvalidArgument, "", "", "unrecognized write option "+name)
}

// ParseWriteOptions combines several names into one set.
func ParseWriteOptions(names []string) (WriteOptions, error) {
	var options WriteOptions
	for _, name := range names {
		option, err := ParseWriteOption(name)
		if err != nil {
			return 0, err
		}
		options |= option
	}
	return options, nil
}
