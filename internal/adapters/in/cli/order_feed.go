// Package cli reads the order feed that drives a simulation run.
// It decodes the JSON array of order descriptors from standard input or a
// file and translates it into submit commands for the dispatch core.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pquerna/ffjson/ffjson"

	"dispatchsim/internal/core/application/usecases/commands"
	"dispatchsim/internal/pkg/errs"
)

// StdinPath selects standard input as the order feed source.
const StdinPath = "-"

// OrderDescriptor is one entry of the JSON order feed.
// PrepTime is measured in whole time units, not a wall-clock duration.
type OrderDescriptor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PrepTime int    `json:"prepTime"`
}

// Validate checks the descriptor against the input contract.
func (d OrderDescriptor) Validate() error {
	if d.ID == "" {
		return errs.NewValueIsRequiredError("id")
	}
	if d.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if d.PrepTime <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("prepTime is invalid",
			fmt.Errorf("%d is not greater than 0", d.PrepTime))
	}

	return nil
}

// DecodeOrders decodes the order feed from the given reader.
// The feed must be a JSON array of descriptors; a malformed document or
// an invalid descriptor fails the whole feed, because a run over a
// partial input would produce misleading averages.
func DecodeOrders(r io.Reader) ([]OrderDescriptor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading order feed: %w", err)
	}

	var descriptors []OrderDescriptor
	if err := ffjson.Unmarshal(data, &descriptors); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order feed is invalid", err)
	}

	for i, descriptor := range descriptors {
		if err := descriptor.Validate(); err != nil {
			return nil, fmt.Errorf("order descriptor %d: %w", i, err)
		}
	}

	return descriptors, nil
}

// LoadOrders reads the order feed from the named file, or from standard
// input when path is StdinPath.
func LoadOrders(path string) ([]OrderDescriptor, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}

	if path == StdinPath {
		return DecodeOrders(os.Stdin)
	}

	feed, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening order feed: %w", err)
	}
	defer feed.Close()

	return DecodeOrders(feed)
}

// ToCommands translates descriptors into submit commands, scaling each
// preparation time by the run's time unit.
func ToCommands(descriptors []OrderDescriptor, timeUnit time.Duration) ([]commands.SubmitOrderCommand, error) {
	if timeUnit <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("time unit is invalid",
			fmt.Errorf("%s is not greater than 0", timeUnit))
	}

	submitCommands := make([]commands.SubmitOrderCommand, 0, len(descriptors))
	for i, descriptor := range descriptors {
		cmd, err := commands.NewSubmitOrderCommand(
			descriptor.ID,
			descriptor.Name,
			time.Duration(descriptor.PrepTime)*timeUnit,
		)
		if err != nil {
			return nil, fmt.Errorf("order descriptor %d: %w", i, err)
		}

		submitCommands = append(submitCommands, cmd)
	}

	return submitCommands, nil
}
