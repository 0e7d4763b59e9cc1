// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Loader is used to specify the ROM to use when Attach()ing to the emulated
// machine.
type Loader struct {
	// filename of ROM to load
	Filename string

	// expected hash of the loaded ROM. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will return a copy
	// of this data
	Data []byte
}

// FileExtensions is the list of file extensions that are recognised as ROM
// files by the romloader package.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (rl Loader) ShortName() string {
	shortName := path.Base(rl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(rl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (rl Loader) HasLoaded() bool {
	return len(rl.Data) > 0
}

// Load the ROM data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (rl *Loader) Load() error {
	if len(rl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(rl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(rl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		rl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		f, err := os.Open(rl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer f.Close()

		rl.Data, err = io.ReadAll(f)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(rl.Data))

	// check for hash consistency
	if rl.Hash != "" && rl.Hash != hash {
		return curated.Errorf("romloader: %v", "unexpected hash value")
	}

	rl.Hash = hash

	return nil
}
