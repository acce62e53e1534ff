package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"housing-insights-service/internal/contracts/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Register every schema as a resource first so `$ref` between schemas
	// resolves, then compile.
	for _, root := range []string{"events", "requests"} {
		err := fs.WalkDir(schemas.FS, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				file, _ := schemas.FS.Open(path)
				defer file.Close()
				if err := compiler.AddResource(path, file); err != nil {
					log.Fatalf("failed to add schema resource %s: %v", path, err)
				}
			}
			return nil
		})
		if err != nil {
			log.Fatalf("error walking and adding schema resources: %v", err)
		}
	}

	for _, root := range []string{"events", "requests"} {
		err := fs.WalkDir(schemas.FS, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				schema, err := compiler.Compile(path)
				if err != nil {
					log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
					return nil
				}

				key := generateKeyFromPath(path)
				compiledSchemas[key] = schema
			}
			return nil
		})
		if err != nil {
			log.Fatalf("error walking and compiling schemas: %v", err)
		}
	}
}

// generateKeyFromPath turns "events/query-recorded/v1.json" into
// "QueryRecordedEvent/1.0.0" and "requests/predict/v1.json" into
// "PredictRequest/1.0.0".
func generateKeyFromPath(path string) string {
	trimmedPath := strings.TrimSuffix(path, ".json")

	parts := strings.Split(trimmedPath, "/")
	if len(parts) != 3 {
		return ""
	}

	var suffix string
	switch parts[0] {
	case "events":
		suffix = "Event"
	case "requests":
		suffix = "Request"
	}

	caser := cases.Title(language.English)

	nameParts := strings.Split(parts[1], "-")
	var nameBuilder strings.Builder
	for _, p := range nameParts {
		nameBuilder.WriteString(caser.String(p))
	}
	nameBuilder.WriteString(suffix)

	version := strings.Replace(parts[2], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", nameBuilder.String(), version)
}

// ValidateMessage checks a message body against the named contract.
func ValidateMessage(contractName, version string, body []byte) error {
	key := fmt.Sprintf("%s/%s", contractName, version)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for contract '%s' version '%s' not found", contractName, version)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}
