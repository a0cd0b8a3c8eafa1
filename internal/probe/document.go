package probe

import (
	"encoding/json"

	"github.com/tailscale/hujson"
)

const packageManifestFileNameConstant = "package.json"

// DocumentState describes the outcome of loading a structured document.
type DocumentState int

// Document states reported by ReadDocument and PackageManifest.
const (
	DocumentAbsent DocumentState = iota
	DocumentInvalid
	DocumentParsed
)

// Document is a decoded JSON object. Lookups on absent or invalid documents return zero values.
type Document struct {
	Name  string
	State DocumentState
	root  map[string]any
}

// Parsed reports whether the document decoded into a JSON object.
func (document Document) Parsed() bool {
	return document.State == DocumentParsed
}

// Value walks the nested object keys in path and returns the value found there.
func (document Document) Value(path ...string) (any, bool) {
	if document.root == nil || len(path) == 0 {
		return nil, false
	}
	current := document.root
	for keyIndex, key := range path {
		value, exists := current[key]
		if !exists {
			return nil, false
		}
		if keyIndex == len(path)-1 {
			return value, true
		}
		nested, isObject := value.(map[string]any)
		if !isObject {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Object returns the nested object at path, or nil.
func (document Document) Object(path ...string) map[string]any {
	value, exists := document.Value(path...)
	if !exists {
		return nil
	}
	object, isObject := value.(map[string]any)
	if !isObject {
		return nil
	}
	return object
}

// Text returns the string at path, or an empty string.
func (document Document) Text(path ...string) string {
	value, exists := document.Value(path...)
	if !exists {
		return ""
	}
	text, isString := value.(string)
	if !isString {
		return ""
	}
	return text
}

// Bool returns the boolean at path and whether a boolean was set there.
func (document Document) Bool(path ...string) (bool, bool) {
	value, exists := document.Value(path...)
	if !exists {
		return false, false
	}
	flag, isBool := value.(bool)
	if !isBool {
		return false, false
	}
	return flag, true
}

// Truthy reports whether the value at path is set to something other than null, false, zero, or an empty string.
// Empty arrays and objects count as set.
func (document Document) Truthy(path ...string) bool {
	value, exists := document.Value(path...)
	if !exists {
		return false
	}
	switch typedValue := value.(type) {
	case nil:
		return false
	case bool:
		return typedValue
	case string:
		return len(typedValue) > 0
	case float64:
		return typedValue != 0
	default:
		return true
	}
}

// ReadDocument loads relativePath as JSON with comments and trailing commas permitted.
func (inspector *Inspector) ReadDocument(relativePath string) Document {
	document := Document{Name: relativePath}

	textFile := inspector.ReadText(relativePath)
	switch textFile.State {
	case TextAbsent:
		document.State = DocumentAbsent
		return document
	case TextUnreadable:
		document.State = DocumentInvalid
		return document
	}

	standardized, standardizeError := hujson.Standardize([]byte(textFile.Content))
	if standardizeError != nil {
		document.State = DocumentInvalid
		return document
	}

	return decodeDocument(document, standardized)
}

// PackageManifest loads package.json as strict JSON.
func (inspector *Inspector) PackageManifest() Manifest {
	document := Document{Name: packageManifestFileNameConstant}

	textFile := inspector.ReadText(packageManifestFileNameConstant)
	switch textFile.State {
	case TextAbsent:
		document.State = DocumentAbsent
		return Manifest{Document: document}
	case TextUnreadable:
		document.State = DocumentInvalid
		return Manifest{Document: document}
	}

	return Manifest{Document: decodeDocument(document, []byte(textFile.Content))}
}

func decodeDocument(document Document, content []byte) Document {
	var decoded any
	if unmarshalError := json.Unmarshal(content, &decoded); unmarshalError != nil {
		document.State = DocumentInvalid
		return document
	}
	root, isObject := decoded.(map[string]any)
	if !isObject {
		document.State = DocumentInvalid
		return document
	}
	document.State = DocumentParsed
	document.root = root
	return document
}
