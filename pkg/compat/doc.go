// Package compat resolves plugin compatibility rows for the ManiVault plugin
// table.
//
// # Overview
//
// For every configured repository the table shows which core library
// versions the plugin supports and which plugin version matches them. Two
// sources feed a row, and exactly one of them is used per repository:
//
//   - A [PluginInfo] manifest (PluginInfo.json at the branch root), which
//     states the plugin name and its compatible core versions explicitly.
//   - The repository's branch list, used only when no manifest exists. Every
//     branch named "<core prefix><suffix>" contributes its suffix as a plugin
//     version compatible with the configured core.
//
// [Resolve] turns a [RepositorySpec] plus fetched [Metadata] into a [Row];
// [Table] renders rows as a Markdown document. Nothing in this package
// performs I/O beyond writing the rendered table.
//
// # Core Prefix
//
// The [CorePrefix] names the branch convention for one core release, for
// example "release/core_1.3/". The displayed core version is derived from it
// by dropping the "release/core_" lead and trailing slashes ("1.3").
package compat
