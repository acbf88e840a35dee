package bank

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the bank format major version this build reads.
const SupportedMajor = "v1"

const schemaURL = "schema://quizzer/bank.json"

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// bankSchema returns the compiled bank schema, compiling it on first use.
func bankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// validateSchema checks a JSON-encoded bank against the embedded schema.
func validateSchema(raw []byte) error {
	sch, err := bankSchema()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// checkVersion accepts any valid semantic version whose major is SupportedMajor.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q: %w", v, ErrUnsupportedVersion)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("version %s, want %s.x.y: %w", v, SupportedMajor, ErrUnsupportedVersion)
	}
	return nil
}
