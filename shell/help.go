package shell

const helpText = `crossfill shell commands:

load <filename>       - load a structure file (underscores are open cells)
pool <filename>       - load a word list, one word per line
solve [-distinct true] [-log <file>]
                      - fill the loaded structure from the loaded pool
show                  - display the grid, with the last solution if any
export <file.png>     - write the last solution as a PNG image
autoplay [-n 1000] [-threads N] [-poolsize N] [-log <file>] [-db <file>]
autoplay stop         - batch solving with shuffled pools; stop a batch
analyze [<batch.csv>] - statistics for a batch log file
summary <batch.csv> <out.yaml>
                      - write a yaml summary of a batch log file
set [<option> <value>]
                      - show or change settings
exit                  - quit
`

func usage() (*Response, error) {
	return msg(helpText), nil
}
