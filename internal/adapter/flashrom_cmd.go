package adapter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	m "github.com/mouse-blink/flashqual/internal/model"
)

// wpOpt selects at most one write protect action; range may accompany it.
type wpOpt struct {
	rng     *m.Range // --wp-range x0,x1
	status  bool     // --wp-status
	list    bool     // --wp-list
	enable  bool     // --wp-enable
	disable bool     // --wp-disable
}

// ioOpt selects at most one image operation.
type ioOpt struct {
	read   m.Path // -r <file>
	write  m.Path // -w <file>
	verify m.Path // -v <file>
	erase  bool   // -E
}

type flashromOpt struct {
	wp wpOpt
	io ioOpt

	layout m.Path // -l <file>
	image  string // -i <name>

	flashName  bool // --flash-name
	ignoreFmap bool // --ignore-fmap
	verbose    bool // -V
}

// FlashromCmd drives a flashrom binary as a subprocess.
type FlashromCmd struct {
	path   string
	target m.FlashTarget
	runner CommandRunner
	logger *log.Logger
	flags  m.Flags
}

// CmdOption configures a FlashromCmd.
type CmdOption func(*FlashromCmd)

// WithCommandRunner replaces the process runner, mostly for tests.
func WithCommandRunner(runner CommandRunner) CmdOption {
	return func(c *FlashromCmd) {
		c.runner = runner
	}
}

// WithCmdLogger sets the logger used to trace invocations.
func WithCmdLogger(logger *log.Logger) CmdOption {
	return func(c *FlashromCmd) {
		c.logger = logger
	}
}

// NewFlashromCmd creates a backend running the flashrom binary at path.
func NewFlashromCmd(path string, target m.FlashTarget, opts ...CmdOption) *FlashromCmd {
	c := &FlashromCmd{
		path:   path,
		target: target,
		runner: NewLocalCommandRunner(),
		logger: log.Default(),
		flags:  m.DefaultFlags(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Size runs flashrom --flash-size.
func (c *FlashromCmd) Size() (int64, error) {
	stdout, _, err := c.run([]string{"--flash-size"})
	if err != nil {
		return 0, err
	}

	return extractSize(string(stdout))
}

// Name runs flashrom --flash-name.
func (c *FlashromCmd) Name() (string, string, error) {
	stdout, stderr, err := c.dispatch(flashromOpt{flashName: true})
	if err != nil {
		return "", "", err
	}

	c.logger.Debugf("name() stdout: %q", stdout)
	c.logger.Debugf("name() stderr: %q", stderr)

	vendor, name, ok := extractFlashName(string(stdout))
	if !ok {
		return "", "", errors.New("didn't find chip vendor/name in flashrom output")
	}

	return vendor, name, nil
}

// WPRange sets software write protect over a range.
func (c *FlashromCmd) WPRange(r m.Range, enable bool) error {
	rng := r
	opt := flashromOpt{wp: wpOpt{rng: &rng, enable: enable}}

	stdout, stderr, err := c.dispatch(opt)
	if err != nil {
		return err
	}

	c.logger.Debugf("wp_range() stdout:\n%s", stdout)
	c.logger.Debugf("wp_range() stderr:\n%s", stderr)

	return nil
}

// WPList runs flashrom --wp-list.
func (c *FlashromCmd) WPList() (string, error) {
	stdout, _, err := c.dispatch(flashromOpt{wp: wpOpt{list: true}})
	if err != nil {
		return "", err
	}

	if len(stdout) == 0 {
		return "", fmt.Errorf("wp_list isn't supported on platforms using the Linux kernel SPI driver: %w", ErrUnsupported)
	}

	return string(stdout), nil
}

// WPStatus runs flashrom --wp-status and looks for the expected state line.
func (c *FlashromCmd) WPStatus(enabled bool) (bool, error) {
	status := enabledWord(enabled)
	c.logger.Infof("See if chip write protect is %s", status)

	stdout, _, err := c.dispatch(flashromOpt{wp: wpOpt{status: true}})
	if err != nil {
		return false, err
	}

	c.logger.Debugf("wp_status():\n%s", stdout)

	return strings.Contains(string(stdout), "write protect is "+status), nil
}

// WPToggle enables or disables software write protect over the whole chip.
// For MTD, --wp-range and --wp-enable must be used together.
func (c *FlashromCmd) WPToggle(enable bool) error {
	opt := flashromOpt{wp: wpOpt{enable: enable, disable: !enable}}

	if enable {
		size, err := c.Size()
		if err != nil {
			return err
		}

		opt.wp.rng = &m.Range{Start: 0, Len: size}
	}

	stdout, stderr, err := c.dispatch(opt)
	if err != nil {
		return fmt.Errorf("cannot %s write-protect: %w", strings.TrimSuffix(enabledWord(enable), "d"), err)
	}

	c.logger.Debugf("wp_toggle() stdout:\n%s", stdout)
	c.logger.Debugf("wp_toggle() stderr:\n%s", stderr)
	c.logger.Infof("Successfully %s write-protect", enabledWord(enable))

	return nil
}

// ReadIntoFile reads the whole chip into path.
func (c *FlashromCmd) ReadIntoFile(path m.Path) error {
	return c.ioOnly(flashromOpt{io: ioOpt{read: path}}, "read")
}

// ReadRegionIntoFile reads the named FMAP region into path.
func (c *FlashromCmd) ReadRegionIntoFile(path m.Path, region string) error {
	return c.ioOnly(flashromOpt{io: ioOpt{read: path}, image: region}, "read_region")
}

// WriteFromFile writes the whole chip from path.
func (c *FlashromCmd) WriteFromFile(path m.Path) error {
	return c.ioOnly(flashromOpt{io: ioOpt{write: path}}, "write")
}

// WriteFromFileRegion writes only region, as described by the layout file.
func (c *FlashromCmd) WriteFromFileRegion(path m.Path, region string, layout m.Path) error {
	opt := flashromOpt{
		io:         ioOpt{write: path},
		layout:     layout,
		image:      region,
		ignoreFmap: true,
	}

	return c.ioOnly(opt, "write_region")
}

// VerifyFromFile compares the whole chip with path.
func (c *FlashromCmd) VerifyFromFile(path m.Path) error {
	return c.ioOnly(flashromOpt{io: ioOpt{verify: path}}, "verify")
}

// VerifyRegionFromFile compares the named FMAP region with path.
func (c *FlashromCmd) VerifyRegionFromFile(path m.Path, region string) error {
	return c.ioOnly(flashromOpt{io: ioOpt{verify: path}, image: region}, "verify_region")
}

// Erase erases the whole chip.
func (c *FlashromCmd) Erase() error {
	return c.ioOnly(flashromOpt{io: ioOpt{erase: true}}, "erase")
}

// CanControlHWWP reports whether the target exposes a hardware write protect line.
func (c *FlashromCmd) CanControlHWWP() bool {
	return c.target.CanControlHWWP()
}

// SetFlags stores flags applied to subsequent write and erase operations.
func (c *FlashromCmd) SetFlags(flags m.Flags) {
	c.flags = flags
}

func (c *FlashromCmd) ioOnly(opt flashromOpt, op string) error {
	stdout, _, err := c.dispatch(opt)
	if err != nil {
		return err
	}

	c.logger.Debugf("%s():\n%s", op, stdout)

	return nil
}

func (c *FlashromCmd) dispatch(opt flashromOpt) ([]byte, []byte, error) {
	params := decodeOpts(opt)
	if opt.io.write != "" || opt.io.erase {
		params = append(params, flagArgs(c.flags)...)
	}

	return c.run(params)
}

func (c *FlashromCmd) run(params []string) ([]byte, []byte, error) {
	// from man page:
	//  ' -p, --programmer <name>[:parameter[,parameter[,parameter]]] '
	args := append([]string{"-p", c.target.ProgrammerArg()}, params...)

	c.logger.Infof("flashrom_dispatch() running: %s %v", c.path, args)

	stdout, stderr, err := c.runner.Run(c.path, args...)
	if err != nil {
		return stdout, stderr, fmt.Errorf("flashrom %s: %w", strings.Join(params, " "), err)
	}

	return stdout, stderr, nil
}

// decodeOpts turns options into flashrom arguments. Each argument must not
// contain spaces.
func decodeOpts(opts flashromOpt) []string {
	var params []string

	if opts.wp.rng != nil {
		params = append(params, "--wp-range", hexRangeString(opts.wp.rng.Start, opts.wp.rng.Len))
	}

	switch {
	case opts.wp.status:
		params = append(params, "--wp-status")
	case opts.wp.list:
		params = append(params, "--wp-list")
	case opts.wp.enable:
		params = append(params, "--wp-enable")
	case opts.wp.disable:
		params = append(params, "--wp-disable")
	}

	switch {
	case opts.io.read != "":
		params = append(params, "-r", string(opts.io.read))
	case opts.io.write != "":
		params = append(params, "-w", string(opts.io.write))
	case opts.io.verify != "":
		params = append(params, "-v", string(opts.io.verify))
	case opts.io.erase:
		params = append(params, "-E")
	}

	if opts.layout != "" {
		params = append(params, "-l", string(opts.layout))
	}

	if opts.image != "" {
		params = append(params, "-i", opts.image)
	}

	if opts.flashName {
		params = append(params, "--flash-name")
	}

	if opts.ignoreFmap {
		params = append(params, "--ignore-fmap")
	}

	if opts.verbose {
		params = append(params, "-V")
	}

	return params
}

func flagArgs(flags m.Flags) []string {
	var args []string
	if flags.Force {
		args = append(args, "--force")
	}

	if !flags.VerifyAfterWrite {
		args = append(args, "--noverify")
	}

	if !flags.VerifyWholeChip {
		args = append(args, "--noverify-all")
	}

	return args
}

func hexRangeString(start, length int64) string {
	return fmt.Sprintf("0x%06X,0x%06X", start, length)
}

func enabledWord(enabled bool) string {
	if enabled {
		return "enabled"
	}

	return "disabled"
}

// extractSize finds the last purely numeric line of flashrom --flash-size
// output. flashrom tends to write additional messages to stdout.
func extractSize(stdout string) (int64, error) {
	var last string

	for _, line := range strings.Split(stdout, "\n") {
		if line != "" && strings.Trim(line, "0123456789") == "" {
			last = line
		}
	}

	if last == "" {
		return 0, errors.New("found no purely-numeric lines in flashrom output")
	}

	size, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse flashrom size output as integer: %w", err)
	}

	return size, nil
}

// extractFlashName gets the vendor and name from the first line shaped like
// 'vendor="foo" name="bar"'.
func extractFlashName(stdout string) (string, string, bool) {
	const prefix = `vendor="`

	for _, line := range strings.Split(stdout, "\n") {
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		vendor, name, found := strings.Cut(strings.TrimPrefix(line, prefix), `" name="`)
		if !found {
			continue
		}

		return vendor, strings.TrimSuffix(name, `"`), true
	}

	return "", "", false
}
