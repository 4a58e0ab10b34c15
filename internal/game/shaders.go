package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Tile vertex shader: point sprites with per-vertex pos/size/color and
// a connection-mask selector consumed by the fragment shader. Grid +Y
// is up, so NDC Y is not flipped.
const tileVertSrc = `#version 410 core

layout(location = 0) in vec2 aCellPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aMask;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;
flat out int vMask;

void main() {
    vec2 screenPos = (aCellPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    gl_Position = vec4(ndc, 0.0, 1.0);
    float ps = floor(aSize * uZoom + 0.5);
    gl_PointSize = max(1.0, ps);
    vColor = aColor;
    vMask = int(aMask + 0.5);
}
` + "\x00"

// Tile fragment shader: draws a pipe section from a 4-bit connection
// mask (1=up, 2=right, 4=down, 8=left). A rounded core covers the cell
// centre and an arm extends to each connected edge, so neighbouring
// tiles join seamlessly. Mask 0 is the fallback: a plain filled cell.
// Mask 16 marks the full square used for border and background cells.
const tileFragSrc = `#version 410 core

in vec4 vColor;
flat in int vMask;
out vec4 FragColor;

const float edge = 0.5;   // arms reach the cell boundary
const float core = 0.30;  // pipe half-width

void main() {
    // Point-local coords, +y up to match cell space.
    vec2 v = gl_PointCoord - vec2(0.5);
    v.y = -v.y;

    if (vMask >= 16) {
        // Plain square cell (border ring, fallback fill).
        if (abs(v.x) > 0.48 || abs(v.y) > 0.48) discard;
        FragColor = vColor;
        return;
    }

    bool inside = abs(v.x) <= core && abs(v.y) <= core;
    if ((vMask & 1) != 0) inside = inside || (v.y >= 0.0 && v.y <= edge && abs(v.x) <= core);
    if ((vMask & 2) != 0) inside = inside || (v.x >= 0.0 && v.x <= edge && abs(v.y) <= core);
    if ((vMask & 4) != 0) inside = inside || (v.y <= 0.0 && v.y >= -edge && abs(v.x) <= core);
    if ((vMask & 8) != 0) inside = inside || (v.x <= 0.0 && v.x >= -edge && abs(v.y) <= core);

    if (vMask == 0) inside = abs(v.x) <= 0.42 && abs(v.y) <= 0.42;

    if (!inside) discard;

    // Darken toward the pipe edge for a rounded look.
    float d = max(abs(v.x), abs(v.y));
    float shade = 1.0 - smoothstep(core * 0.55, core, min(d, core)) * 0.35;
    FragColor = vec4(vColor.rgb * shade, vColor.a);
}
` + "\x00"

// Glow fragment shader: additive radial falloff for the food pellet.
// vColor.rgb should be pre-multiplied by desired brightness.
const glowFragSrc = `#version 410 core

in vec4 vColor;
flat in int vMask;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0; // 0=center, 1=edge
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff; // quadratic: natural light falloff
    FragColor = vec4(vColor.rgb * falloff, 1.0);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
