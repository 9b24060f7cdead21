package logger

import (
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var textPool = buffer.NewPool()

// textEncoder writes "LEVEL:time:message" lines. zap's console encoder always
// puts the time first, so the level and time are written here and the
// console encoder only handles the message and fields.
type textEncoder struct {
	zapcore.Encoder
}

func newTextEncoder() zapcore.Encoder {
	return textEncoder{
		Encoder: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey:       "message",
			LineEnding:       zapcore.DefaultLineEnding,
			EncodeDuration:   zapcore.StringDurationEncoder,
			ConsoleSeparator: ":",
		}),
	}
}

func (e textEncoder) Clone() zapcore.Encoder {
	return textEncoder{Encoder: e.Encoder.Clone()}
}

func (e textEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	body, err := e.Encoder.EncodeEntry(ent, fields)
	if err != nil {
		return nil, err
	}
	defer body.Free()

	line := textPool.Get()
	line.AppendString(ent.Level.CapitalString())
	line.AppendByte(':')
	line.AppendTime(ent.Time, TimeLayout)
	line.AppendByte(':')
	_, _ = line.Write(body.Bytes())
	return line, nil
}
