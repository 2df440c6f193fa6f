package ccapi

import (
	"errors"
	"fmt"
)

// CellError is a CELL OS error code returned on the status line of a
// console response. The codes and their meanings are the generic errors
// documented at https://www.psdevwiki.com/ps3/Error_Codes#Generic_errors
type CellError uint32

const (
	CellEAgain       CellError = 0x80010001
	CellEInval       CellError = 0x80010002
	CellENosys       CellError = 0x80010003
	CellENomem       CellError = 0x80010004
	CellESrch        CellError = 0x80010005
	CellENoent       CellError = 0x80010006
	CellENoexec      CellError = 0x80010007
	CellEDeadlk      CellError = 0x80010008
	CellEPerm        CellError = 0x80010009
	CellEBusy        CellError = 0x8001000A
	CellETimedout    CellError = 0x8001000B
	CellEAbort       CellError = 0x8001000C
	CellEFault       CellError = 0x8001000D
	CellEChild       CellError = 0x8001000E
	CellEStat        CellError = 0x8001000F
	CellEAlign       CellError = 0x80010010
	CellEKresource   CellError = 0x80010011
	CellEIsdir       CellError = 0x80010012
	CellECanceled    CellError = 0x80010013
	CellEExist       CellError = 0x80010014
	CellEIsconn      CellError = 0x80010015
	CellENotconn     CellError = 0x80010016
	CellEAuthfail    CellError = 0x80010017
	CellENotmself    CellError = 0x80010018
	CellESysver      CellError = 0x80010019
	CellEAuthfatal   CellError = 0x8001001A
	CellEDom         CellError = 0x8001001B
	CellERange       CellError = 0x8001001C
	CellEIlseq       CellError = 0x8001001D
	CellEFpos        CellError = 0x8001001E
	CellEIntr        CellError = 0x8001001F
	CellEFbig        CellError = 0x80010020
	CellEMlink       CellError = 0x80010021
	CellENfile       CellError = 0x80010022
	CellENospc       CellError = 0x80010023
	CellENotty       CellError = 0x80010024
	CellEPipe        CellError = 0x80010025
	CellERofs        CellError = 0x80010026
	CellESpipe       CellError = 0x80010027
	CellE2big        CellError = 0x80010028
	CellEAcces       CellError = 0x80010029
	CellEBadf        CellError = 0x8001002A
	CellEIo          CellError = 0x8001002B
	CellEMfile       CellError = 0x8001002C
	CellENodev       CellError = 0x8001002D
	CellENotdir      CellError = 0x8001002E
	CellENxio        CellError = 0x8001002F
	CellEXdev        CellError = 0x80010030
	CellEBadmsg      CellError = 0x80010031
	CellEInprogress  CellError = 0x80010032
	CellEMsgsize     CellError = 0x80010033
	CellENametoolong CellError = 0x80010034
	CellENolck       CellError = 0x80010035
	CellENotempty    CellError = 0x80010036
	CellEUnsup       CellError = 0x80010037
	CellEFsspecific  CellError = 0x80010038
	CellEOverflow    CellError = 0x80010039
	CellENotmounted  CellError = 0x8001003A
	CellENotsdata    CellError = 0x8001003B
	CellESdkver      CellError = 0x8001003C
	CellENolicdisc   CellError = 0x8001003D
	CellENolicent    CellError = 0x8001003E
)

var cellErrorText = map[CellError]string{
	CellEAgain:       "the resource is temporarily unavailable",
	CellEInval:       "invalid argument or flag",
	CellENosys:       "the feature is not yet implemented",
	CellENomem:       "memory allocation failed",
	CellESrch:        "the resource with the specified identifier does not exist",
	CellENoent:       "the file does not exist",
	CellENoexec:      "the file is in unrecognized format",
	CellEDeadlk:      "resource deadlock is avoided",
	CellEPerm:        "operation not permitted",
	CellEBusy:        "the device or resource is busy",
	CellETimedout:    "the operation is timed out",
	CellEAbort:       "the operation is aborted",
	CellEFault:       "invalid memory access",
	CellEChild:       "try to access a non existing child process",
	CellEStat:        "state of the target thread is invalid",
	CellEAlign:       "alignment is invalid",
	CellEKresource:   "shortage of the kernel resources",
	CellEIsdir:       "the file is a directory",
	CellECanceled:    "operation cancelled",
	CellEExist:       "entry already exists",
	CellEIsconn:      "port is already connected",
	CellENotconn:     "port is not connected",
	CellEAuthfail:    "failure in authorizing SELF",
	CellENotmself:    "the file is not MSELF",
	CellESysver:      "system version error",
	CellEAuthfatal:   "fatal system error occurred while authorizing SELF",
	CellEDom:         "math domain violation",
	CellERange:       "math range violation",
	CellEIlseq:       "illegal multi-byte sequence in input",
	CellEFpos:        "file position error",
	CellEIntr:        "syscall was interrupted",
	CellEFbig:        "file too large",
	CellEMlink:       "too many links",
	CellENfile:       "file table overflow",
	CellENospc:       "no space left on device",
	CellENotty:       "not a TTY",
	CellEPipe:        "broken pipe",
	CellERofs:        "read-only filesystem",
	CellESpipe:       "illegal seek",
	CellE2big:        "arg list too long",
	CellEAcces:       "access violation",
	CellEBadf:        "invalid file descriptor",
	CellEIo:          "filesystem mounting failed",
	CellEMfile:       "too many files open",
	CellENodev:       "no device",
	CellENotdir:      "not a directory",
	CellENxio:        "no such device or IO",
	CellEXdev:        "cross-device link error",
	CellEBadmsg:      "bad message",
	CellEInprogress:  "in progress",
	CellEMsgsize:     "message size error",
	CellENametoolong: "name too long",
	CellENolck:       "no lock",
	CellENotempty:    "not empty",
	CellEUnsup:       "not supported",
	CellEFsspecific:  "file-system specific error",
	CellEOverflow:    "overflow occurred",
	CellENotmounted:  "filesystem not mounted",
	CellENotsdata:    "not SData",
	CellESdkver:      "incorrect version in sys_load_param",
	CellENolicdisc:   "PARAM.SFO license pointer is null",
	CellENolicent:    "DISC.SFO license pointer is null",
}

func (e CellError) Error() string {
	if text, ok := cellErrorText[e]; ok {
		return fmt.Sprintf("%s (%#08x)", text, uint32(e))
	}
	return fmt.Sprintf("unknown console error (%#08x)", uint32(e))
}

// StatusError is returned when the console answers a request with a
// non-zero status line.
type StatusError struct {
	Command string
	Code    CellError
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("console rejected %q: %s", e.Command, e.Code.Error())
}

func (e *StatusError) Unwrap() error {
	return e.Code
}

// IsStatusError reports whether err carries a console status code.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
