package respath

import "path/filepath"

// Normalize converts a path using the platform separator into the
// slash-separated form Classify expects. Per SPEC_FULL.md §9, this
// happens once, immediately after enumeration and before classification,
// so the classifier itself never has to special-case the host OS.
func Normalize(path string) string {
	return filepath.ToSlash(path)
}

// EntryName builds the archive entry name for a classified descriptor,
// following spec.md §4.8: "type_dir[-config_str]_name[.extension].flat".
// extension, when supplied, overrides d.Extension (the Values Compiler
// rewrites it to "arsc" before naming the entry).
func EntryName(d *Descriptor, extension string) string {
	dirToken := d.TypeDir
	if d.ConfigStr != "" {
		dirToken += "-" + d.ConfigStr
	}
	name := d.Name
	ext := d.Extension
	if extension != "" {
		ext = extension
	}
	if ext != "" {
		name += "." + ext
	}
	return dirToken + "_" + name + ".flat"
}
