package formatters

import "encoding/json"

// JSONFormatter writes the cooked data of an asset as indented JSON.
type JSONFormatter struct{}

// Format marshals the asset's cooked data. The graph and opts are not used.
func (f *JSONFormatter) Format(a *Asset, opts RenderOptions) (string, error) {
	data, err := json.MarshalIndent(a.Data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GenerateURL returns false as JSON format does not support URL generation.
func (f *JSONFormatter) GenerateURL(output string) (string, bool) {
	return "", false
}
