// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
)

const helpText = `
FlatSource - flatten a source tree into one directory

USAGE:
  flatsource --dest <dir> --in-ext <ext...> --out-ext <ext...> [options]

CORE OPTIONS:
  --root string            Root directory to scan (default: ".")
  --dest string            Flat destination directory (required)
  --in-ext ext...          Input extensions to collect, e.g. js css (required)
  --out-ext ext...         Output extensions (required)
                             one value:  every input maps to it
                             several:    paired with --in-ext by position,
                                         unpaired inputs map to .txt
  --exclude pattern...     Directory name globs to skip, e.g. node_modules "dist*"
  --gitignore              Also skip paths ignored by <root>/.gitignore
  --dry-run                Simulate: count and plan names, write nothing

OUTPUT OPTIONS:
  --ui string              pterm, plain or quiet (default: "pterm")
  --verbose                Debug logging on stderr

CONFIGURATION:
  --config string          YAML file with the same keys as the flags
                           (root, dest, in_ext, out_ext, exclude, dry_run,
                           gitignore, ui, verbose)

INFO:
  -v, --version            Print version and exit
  -h, --help               Show this help message

Multi-value flags accept space separated values or repeated flags. The
extension flags also split comma lists:  --in-ext js css  ==  --in-ext js,css
Each --exclude value is one pattern, so "[a,b]" keeps its comma.

EXAMPLES:
  Collect JavaScript and CSS as text files:
    flatsource --root ./app --dest ./flat --in-ext js css --out-ext txt

  Keep Python files as .py, skip virtualenvs, simulate first:
    flatsource --dest ./flat --in-ext py --out-ext py --exclude venv ".*" --dry-run

ENVIRONMENT VARIABLES:
  FLATSOURCE_CONFIG        YAML configuration file
  FLATSOURCE_ROOT          Root directory
  FLATSOURCE_DEST          Destination directory
  FLATSOURCE_IN_EXT        Input extensions, comma separated
  FLATSOURCE_OUT_EXT       Output extensions, comma separated
  FLATSOURCE_EXCLUDE       Exclude globs, comma separated outside [...]
  FLATSOURCE_DRY_RUN=true  Simulate
  FLATSOURCE_GITIGNORE=1   Honor .gitignore
  FLATSOURCE_UI=plain      Output style
  FLATSOURCE_LOG_LEVEL     debug, info, warn or error

  Precedence: flags > environment > config file > defaults.

EXIT CODES:
  0  success, including when no file matched
  1  missing root, destination or file I/O failure, interrupted
  2  invalid flags or configuration
`

// PrintHelp writes the help message to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// PrintVersion writes the version line to w.
func PrintVersion(w io.Writer, version string) {
	fmt.Fprintf(w, "FlatSource v%s\n", version)
}
