package config

import "github.com/alecthomas/kong"

// Cli is the kong command surface of the lzkit tool.
type Cli struct {
	Version kong.VersionFlag

	LogLevel   string `kong:"name=log-level,env=LOG_LEVEL,default=info,help='Set log level.'"`
	LogJSON    bool   `kong:"name=log-json,env=LOG_JSON,default=false,help='Enable JSON logging output.'"`
	LogCaller  bool   `kong:"name=log-caller,env=LOG_CALLER,default=false,help='Add file:line of the caller to log output.'"`
	LogNoColor bool   `kong:"name=log-nocolor,env=LOG_NOCOLOR,default=false,help='Disable colorized output.'"`

	Compress   CompressCmd   `kong:"cmd,help='Compress files into lzk containers.'"`
	Decompress DecompressCmd `kong:"cmd,help='Decompress lzk containers.'"`
	Formats    FormatsCmd    `kong:"cmd,help='List the available formats.'"`
}

// CompressCmd compresses one or more files, each into its own container.
type CompressCmd struct {
	Format string   `kong:"name=format,short=f,default=lzss,help='Compression format. See the formats command.'"`
	Level  string   `kong:"name=level,default=optimal,enum='none,fastest,optimal,smallest',help='Search effort for the legacy formats.'"`
	NoLazy bool     `kong:"name=no-lazy,default=false,help='Disable one-step lazy matching.'"`
	Output string   `kong:"name=output,short=o,type=path,help='Output file, or directory when compressing several files.'"`
	Files  []string `kong:"arg,required,name=file,type=existingfile,help='Files to compress.'"`
}

// DecompressCmd restores the original contents of lzk containers.
type DecompressCmd struct {
	Output string   `kong:"name=output,short=o,type=path,help='Output file, or directory when decompressing several files.'"`
	Files  []string `kong:"arg,required,name=file,type=existingfile,help='Containers to decompress.'"`
}

// FormatsCmd lists every format id the tool can read and write.
type FormatsCmd struct{}

// Meta identifies the build for version output.
type Meta struct {
	ID      string
	Name    string
	Desc    string
	URL     string
	Version string
}
