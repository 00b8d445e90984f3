package oplrhythm

import "github.com/cbegin/oplrhythm-go/internal/midi"

// Command codes for the single (command, parameter) mailbox. Unlisted codes
// are no-ops.
const (
	CmdSetBufferHi         byte = 1
	CmdSetBufferLo         byte = 2
	CmdSetBufferSize       byte = 3
	CmdResume              byte = 4
	CmdFadeoutAndStop      byte = 5
	CmdPause               byte = 6
	CmdSetChannelVolume    byte = 7
	CmdSetFadeInFlag       byte = 8
	CmdSetFadeOutFlag      byte = 9
	CmdSetMasterVolume     byte = 10
	CmdTeardown            byte = 11
	CmdQueryStatus         byte = 12
	CmdSetFadeRate         byte = 13
	CmdQueryVolume         byte = 14
	CmdQueryFadeInFlag     byte = 15
	CmdQueryFadeOutFlag    byte = 16
	CmdSetTempo            byte = 17
	CmdQueryTempo          byte = 18
	CmdQueryFadeRate       byte = 19
	CmdSetLoop             byte = 20
	CmdQueryLoop           byte = 21
	CmdQueryVersionMajor   byte = 22
	CmdQueryVersionMinor   byte = 23
	CmdSetChannelProgram   byte = 24
	CmdQueryChannelProgram byte = 25
)

// VersionMajor and VersionMinor are the fixed values returned by the
// version-query commands, kept purely for host capability-probe
// compatibility.
const (
	VersionMajor byte = 0xF0
	VersionMinor byte = 1
)

// Dispatch processes one mailbox command immediately and returns the
// (possibly rewritten) parameter: query commands write their answer into
// the return value, everything else echoes parameter back unchanged.
// Out-of-range channel indices are silently ignored. After Teardown every
// command is a no-op that echoes parameter back.
func (e *Engine) Dispatch(command byte, parameter uint16) uint16 {
	if !e.installed {
		return parameter
	}
	switch command {
	case CmdSetBufferHi:
		e.Stop()
		e.pendingHi = parameter
		return parameter

	case CmdSetBufferLo:
		e.Stop()
		e.pendingLo = parameter
		return parameter

	case CmdSetBufferSize:
		e.pendingSize = uint32(parameter)
		return parameter

	case CmdResume:
		e.Resume()
		return parameter

	case CmdFadeoutAndStop:
		e.FadeoutAndStop()
		return parameter

	case CmdPause:
		e.Pause()
		return parameter

	case CmdSetChannelVolume:
		if ch := parameter & 0xFF; int(ch) < midi.NumChannels {
			e.interp.Channels[ch].Volume = byte(parameter >> 8)
		}
		return parameter

	case CmdSetFadeInFlag:
		e.fadeInFlag = parameter != 0
		return parameter

	case CmdSetFadeOutFlag:
		e.fadeOutFlag = parameter != 0
		return parameter

	case CmdSetMasterVolume:
		e.interp.Volume = byte(parameter)
		return parameter

	case CmdTeardown:
		e.Teardown()
		return parameter

	case CmdQueryStatus:
		return uint16(e.status)

	case CmdSetFadeRate:
		e.params.FadeRate = uint32(parameter)
		e.fade.ResetAccumulators()
		return parameter

	case CmdQueryVolume:
		return uint16(e.interp.Volume)

	case CmdQueryFadeInFlag:
		return boolToUint16(e.fadeInFlag)

	case CmdQueryFadeOutFlag:
		return boolToUint16(e.fadeOutFlag)

	case CmdSetTempo:
		e.interp.Tempo = byte(parameter)
		e.setTempo()
		return parameter

	case CmdQueryTempo:
		return uint16(e.interp.Tempo)

	case CmdQueryFadeRate:
		return uint16(e.params.FadeRate)

	case CmdSetLoop:
		e.interp.Loop = parameter != 0
		return parameter

	case CmdQueryLoop:
		return boolToUint16(e.interp.Loop)

	case CmdQueryVersionMajor:
		return uint16(VersionMajor)

	case CmdQueryVersionMinor:
		return uint16(VersionMinor)

	case CmdSetChannelProgram:
		if ch := parameter & 0xFF; int(ch) < midi.NumChannels {
			e.interp.Channels[ch].Program = byte(parameter >> 8)
		}
		return parameter

	case CmdQueryChannelProgram:
		if ch := parameter & 0xFF; int(ch) < midi.NumChannels {
			return uint16(e.interp.Channels[ch].Program)
		}
		return 0

	default:
		return parameter
	}
}
