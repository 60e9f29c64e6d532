// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/tvsurface/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file. A file that
// does not start with this line is not a valid preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value on each line of the preferences
// file.
const KeySep = " :: "

// Sentinal error patterns.
const (
	InvalidPrefsFile = "prefs: not a valid prefs file (%s)"
	DuplicateKey     = "prefs: duplicate key (%s)"
	InvalidKey       = "prefs: invalid key (%s)"
)

// Disk represents preference values as stored on disk. Values are added with
// the Add() function and are then loaded and saved as a group.
//
// More than one Disk instance can share the same file. Entries in the file
// that are unknown to a Disk instance will be preserved when that instance is
// saved.
type Disk struct {
	path    string
	entries map[string]Pref
}

// NewDisk is the preferred method of initialisation for the Disk type. An
// empty path creates a Disk that is never written to or read from a file.
// The command line stack is still consulted on Load().
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]Pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
func (dsk *Disk) Add(key string, p Pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, KeySep) || strings.ContainsAny(key, "\n;") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// String returns the entries in the same format as they would be written to
// the preferences file, minus the boiler plate.
func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k].String()))
	}
	return s.String()
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Set the value of a registered entry. The value is not written to disk until
// Save() is called.
func (dsk *Disk) Set(key string, v Value) error {
	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(InvalidKey, key)
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf("prefs: %s: %v", key, err)
	}
	return nil
}

// Get the value of a registered entry.
func (dsk *Disk) Get(key string) (Value, error) {
	p, ok := dsk.entries[key]
	if !ok {
		return nil, curated.Errorf(InvalidKey, key)
	}
	return p.Get(), nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save current preference values to disk.
func (dsk *Disk) Save() (rerr error) {
	if dsk.path == "" {
		return nil
	}

	// entries already in the file that belong to other Disk instances
	values, err := readFile(dsk.path)
	if err != nil {
		return err
	}

	for k, v := range dsk.entries {
		values[k] = v.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if !isDefunct(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, values[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. A missing preferences file is not an
// error, the preference values are left as they are.
//
// If useCommandLine is true then values pushed with PushCommandLineStack()
// take precedence over values in the file. Command line values are consumed
// as they are used.
func (dsk *Disk) Load(useCommandLine bool) error {
	if dsk.path != "" {
		values, err := readFile(dsk.path)
		if err != nil {
			return err
		}

		for _, k := range dsk.keys() {
			if v, ok := values[k]; ok {
				if err := dsk.entries[k].Set(v); err != nil {
					return curated.Errorf("prefs: %s: %v", k, err)
				}
			}
		}
	}

	if useCommandLine {
		for _, k := range dsk.keys() {
			if ok, v := GetCommandLinePref(k); ok {
				if err := dsk.entries[k].Set(v); err != nil {
					return curated.Errorf("prefs: %s: %v", k, err)
				}
			}
		}
	}

	return nil
}

// readFile returns the key/value pairs in the named file. A file that doesn't
// exist results in an empty map.
func readFile(path string) (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// an empty file is acceptable but if there is any content then the first
	// line must be the boiler plate
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidPrefsFile, path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), KeySep)
		if !ok {
			continue
		}
		values[k] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return values, nil
}
