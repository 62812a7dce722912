package rates

import (
	"fmt"
	"strings"
)

type Provider string

const (
	PrivatBankProvider Provider = "PrivatBank"
	EmptyProvider      Provider = ""
)

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "privatbank":
		return PrivatBankProvider, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}

func (p Provider) String() string {
	return string(p)
}
