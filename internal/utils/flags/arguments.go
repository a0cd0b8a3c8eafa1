package flags

import (
	"strings"

	"github.com/spf13/pflag"
)

const (
	flagPrefixConstant         = "-"
	longFlagPrefixConstant     = "--"
	argumentTerminatorConstant = "--"
	flagValueSeparatorConstant = "="
)

// DropUnknownFlags removes flag tokens that none of the flag sets define, so an unknown flag is ignored instead of
// swallowing the positional argument after it. Values of known flags and everything after "--" are kept.
func DropUnknownFlags(arguments []string, flagSets ...*pflag.FlagSet) []string {
	filteredArguments := make([]string, 0, len(arguments))

	for index := 0; index < len(arguments); index++ {
		argument := arguments[index]
		if argument == argumentTerminatorConstant {
			filteredArguments = append(filteredArguments, arguments[index:]...)
			break
		}
		if !strings.HasPrefix(argument, flagPrefixConstant) || argument == flagPrefixConstant {
			filteredArguments = append(filteredArguments, argument)
			continue
		}

		definedFlag, valueInline := lookupFlag(argument, flagSets)
		if definedFlag == nil {
			continue
		}
		filteredArguments = append(filteredArguments, argument)

		expectsValue := !valueInline && len(definedFlag.NoOptDefVal) == 0
		if expectsValue && index+1 < len(arguments) {
			index++
			filteredArguments = append(filteredArguments, arguments[index])
		}
	}

	return filteredArguments
}

// lookupFlag resolves a "--name", "--name=value", "-n" or "-nvalue" token. The boolean reports whether the token
// already carries its value.
func lookupFlag(argument string, flagSets []*pflag.FlagSet) (*pflag.Flag, bool) {
	if strings.HasPrefix(argument, longFlagPrefixConstant) {
		flagName, _, valueInline := strings.Cut(strings.TrimPrefix(argument, longFlagPrefixConstant), flagValueSeparatorConstant)
		for _, flagSet := range flagSets {
			if flagSet == nil {
				continue
			}
			if definedFlag := flagSet.Lookup(flagName); definedFlag != nil {
				return definedFlag, valueInline
			}
		}
		return nil, false
	}

	shorthandCluster := strings.TrimPrefix(argument, flagPrefixConstant)
	for _, flagSet := range flagSets {
		if flagSet == nil {
			continue
		}
		if definedFlag := flagSet.ShorthandLookup(shorthandCluster[:1]); definedFlag != nil {
			return definedFlag, len(shorthandCluster) > 1
		}
	}
	return nil, false
}
