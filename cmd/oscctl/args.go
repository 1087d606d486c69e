package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/osc-go/osc/osc"
)

// parseArgument turns a "<tag>:<value>" command-line token into an
// Argument. Unit tags (T, F, N, I) ignore any value.
func parseArgument(token string) (osc.Argument, error) {
	tag, value, ok := strings.Cut(token, ":")
	if !ok {
		return osc.Argument{}, fmt.Errorf("oscctl: argument %q must be TAG:VALUE (e.g. i:42, f:0.5, s:hello)", token)
	}

	switch tag {
	case "i":
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return osc.Argument{}, fmt.Errorf("oscctl: invalid int32 %q: %w", value, err)
		}
		return osc.Int(int32(v)), nil
	case "f":
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return osc.Argument{}, fmt.Errorf("oscctl: invalid float32 %q: %w", value, err)
		}
		return osc.Float(float32(v)), nil
	case "s":
		return osc.Str(value), nil
	case "b":
		data, err := hex.DecodeString(value)
		if err != nil {
			return osc.Argument{}, fmt.Errorf("oscctl: invalid hex blob %q: %w", value, err)
		}
		return osc.BlobArg(data), nil
	case "T":
		return osc.True, nil
	case "F":
		return osc.False, nil
	case "N":
		return osc.Null, nil
	case "I":
		return osc.Impulse, nil
	default:
		return osc.Argument{}, fmt.Errorf("oscctl: unknown argument tag %q", tag)
	}
}

// parseArguments applies parseArgument to every token, in order.
func parseArguments(tokens []string) ([]osc.Argument, error) {
	args := make([]osc.Argument, len(tokens))
	for i, tok := range tokens {
		a, err := parseArgument(tok)
		if err != nil {
			return nil, err
		}
		args[i] = a
	}
	return args, nil
}

// buildMessage assembles a Message from an address and TAG:VALUE tokens.
func buildMessage(address string, tokens []string) (*osc.Message, error) {
	args, err := parseArguments(tokens)
	if err != nil {
		return nil, err
	}
	msg := osc.NewMessage(address)
	for _, a := range args {
		msg.Append(a)
	}
	return msg, nil
}
