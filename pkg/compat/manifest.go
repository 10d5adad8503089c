package compat

import (
	"encoding/json"

	"github.com/manivaultstudio/plugintable/pkg/errors"
)

// ManifestFile is the manifest's path relative to the branch root.
const ManifestFile = "PluginInfo.json"

// PluginInfo is the optional PluginInfo.json manifest of a plugin
// repository. Every field may be absent; use the accessor methods to read
// them with their display defaults applied.
type PluginInfo struct {
	Name    *string      `json:"name,omitempty"`
	Version *VersionInfo `json:"version,omitempty"`
}

// VersionInfo is the "version" object of a [PluginInfo].
type VersionInfo struct {
	Core   []string `json:"core,omitempty"`   // Compatible core versions
	Plugin *string  `json:"plugin,omitempty"` // Plugin version
}

// DecodePluginInfo parses a PluginInfo.json document.
//
// A document that is JSON null or an empty object carries no information and
// is reported as absent: (nil, nil). A document that is not a JSON object
// yields an INVALID_MANIFEST error. Any other object is a manifest; each of
// name, version.core and version.plugin is decoded on its own, and one with
// the wrong shape is left unset so that only that field takes its default.
func DecodePluginInfo(data []byte) (*PluginInfo, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode %s", ManifestFile)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	info := &PluginInfo{}
	if raw, ok := fields["name"]; ok {
		info.Name = decodeOptional[string](raw)
	}
	if raw, ok := fields["version"]; ok {
		var version map[string]json.RawMessage
		if json.Unmarshal(raw, &version) == nil && version != nil {
			info.Version = &VersionInfo{}
			if core := decodeOptional[[]string](version["core"]); core != nil {
				info.Version.Core = *core
			}
			info.Version.Plugin = decodeOptional[string](version["plugin"])
		}
	}
	return info, nil
}

// decodeOptional decodes raw into a T, returning nil when raw is missing,
// null or of another JSON type.
func decodeOptional[T any](raw json.RawMessage) *T {
	if len(raw) == 0 {
		return nil
	}
	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// DisplayName returns the manifest's name, or repo when the name is absent.
func (p *PluginInfo) DisplayName(repo string) string {
	if p == nil || p.Name == nil {
		return repo
	}
	return *p.Name
}

// CoreVersions returns the declared compatible core versions, possibly empty.
func (p *PluginInfo) CoreVersions() []string {
	if p == nil || p.Version == nil {
		return nil
	}
	return p.Version.Core
}

// PluginVersion returns the declared plugin version and whether it is set.
func (p *PluginInfo) PluginVersion() (string, bool) {
	if p == nil || p.Version == nil || p.Version.Plugin == nil {
		return "", false
	}
	return *p.Version.Plugin, true
}
