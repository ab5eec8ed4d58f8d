// Command clipforge is the entrypoint for the clipforge video tool. It
// compresses single files by a 1-10 reduction level and concatenates
// multiple clips, deriving all ffmpeg parameters from probed metadata.
package main

import "github.com/clipforge/clipforge/internal/cli"

func main() {
	cli.Execute()
}
