// SPDX-License-Identifier: Unlicense OR MIT

package gl

type entryPoint struct {
	name     string
	fn       interface{}
	optional bool
}

// entryPoints lists every slot of the table in resolution order. Slots
// marked optional arrived after the OpenGL 2.0/ES 2.0 baseline or exist in
// only one flavor; they may be absent without failing the load.
func (f *Functions) entryPoints() []entryPoint {
	return []entryPoint{
		{"glActiveTexture", &f.activeTexture, false},
		{"glAttachShader", &f.attachShader, false},
		{"glBeginQuery", &f.beginQuery, true},
		{"glBindAttribLocation", &f.bindAttribLocation, false},
		{"glBindBuffer", &f.bindBuffer, false},
		{"glBindBufferBase", &f.bindBufferBase, true},
		{"glBindFramebuffer", &f.bindFramebuffer, false},
		{"glBindRenderbuffer", &f.bindRenderbuffer, false},
		{"glBindTexture", &f.bindTexture, false},
		{"glBindVertexArray", &f.bindVertexArray, true},
		{"glBlendColor", &f.blendColor, false},
		{"glBlendEquation", &f.blendEquation, false},
		{"glBlendEquationSeparate", &f.blendEquationSeparate, false},
		{"glBlendFunc", &f.blendFunc, false},
		{"glBlendFuncSeparate", &f.blendFuncSeparate, false},
		{"glBlitFramebuffer", &f.blitFramebuffer, true},
		{"glBufferData", &f.bufferData, false},
		{"glBufferSubData", &f.bufferSubData, false},
		{"glCheckFramebufferStatus", &f.checkFramebufferStatus, false},
		{"glClear", &f.clear, false},
		{"glClearColor", &f.clearColor, false},
		{"glClearDepth", &f.clearDepth, true},
		{"glClearDepthf", &f.clearDepthf, true},
		{"glClearStencil", &f.clearStencil, false},
		{"glClientWaitSync", &f.clientWaitSync, true},
		{"glColorMask", &f.colorMask, false},
		{"glCompileShader", &f.compileShader, false},
		{"glCompressedTexImage2D", &f.compressedTexImage2D, false},
		{"glCopyTexImage2D", &f.copyTexImage2D, false},
		{"glCopyTexSubImage2D", &f.copyTexSubImage2D, false},
		{"glCreateProgram", &f.createProgram, false},
		{"glCreateShader", &f.createShader, false},
		{"glCullFace", &f.cullFace, false},
		{"glDebugMessageCallback", &f.debugMessageCallback, true},
		{"glDebugMessageControl", &f.debugMessageControl, true},
		{"glDebugMessageInsert", &f.debugMessageInsert, true},
		{"glDeleteBuffers", &f.deleteBuffers, false},
		{"glDeleteFramebuffers", &f.deleteFramebuffers, false},
		{"glDeleteProgram", &f.deleteProgram, false},
		{"glDeleteQueries", &f.deleteQueries, true},
		{"glDeleteRenderbuffers", &f.deleteRenderbuffers, false},
		{"glDeleteShader", &f.deleteShader, false},
		{"glDeleteSync", &f.deleteSync, true},
		{"glDeleteTextures", &f.deleteTextures, false},
		{"glDeleteVertexArrays", &f.deleteVertexArrays, true},
		{"glDepthFunc", &f.depthFunc, false},
		{"glDepthMask", &f.depthMask, false},
		{"glDepthRange", &f.depthRange, true},
		{"glDepthRangef", &f.depthRangef, true},
		{"glDetachShader", &f.detachShader, false},
		{"glDisable", &f.disable, false},
		{"glDisableVertexAttribArray", &f.disableVertexAttribArray, false},
		{"glDrawArrays", &f.drawArrays, false},
		{"glDrawArraysInstanced", &f.drawArraysInstanced, true},
		{"glDrawElements", &f.drawElements, false},
		{"glDrawElementsBaseVertex", &f.drawElementsBaseVertex, true},
		{"glDrawElementsInstanced", &f.drawElementsInstanced, true},
		{"glEnable", &f.enable, false},
		{"glEnableVertexAttribArray", &f.enableVertexAttribArray, false},
		{"glEndQuery", &f.endQuery, true},
		{"glFenceSync", &f.fenceSync, true},
		{"glFinish", &f.finish, false},
		{"glFlush", &f.flush, false},
		{"glFramebufferRenderbuffer", &f.framebufferRenderbuffer, false},
		{"glFramebufferTexture2D", &f.framebufferTexture2D, false},
		{"glFrontFace", &f.frontFace, false},
		{"glGenBuffers", &f.genBuffers, false},
		{"glGenFramebuffers", &f.genFramebuffers, false},
		{"glGenQueries", &f.genQueries, true},
		{"glGenRenderbuffers", &f.genRenderbuffers, false},
		{"glGenTextures", &f.genTextures, false},
		{"glGenVertexArrays", &f.genVertexArrays, true},
		{"glGenerateMipmap", &f.generateMipmap, false},
		{"glGetAttribLocation", &f.getAttribLocation, false},
		{"glGetError", &f.getError, false},
		{"glGetFloatv", &f.getFloatv, false},
		{"glGetInteger64v", &f.getInteger64v, true},
		{"glGetIntegerv", &f.getIntegerv, false},
		{"glGetProgramInfoLog", &f.getProgramInfoLog, false},
		{"glGetProgramiv", &f.getProgramiv, false},
		{"glGetQueryObjectuiv", &f.getQueryObjectuiv, true},
		{"glGetShaderInfoLog", &f.getShaderInfoLog, false},
		{"glGetShaderiv", &f.getShaderiv, false},
		{"glGetString", &f.getString, false},
		{"glGetStringi", &f.getStringi, true},
		{"glGetUniformBlockIndex", &f.getUniformBlockIndex, true},
		{"glGetUniformLocation", &f.getUniformLocation, false},
		{"glHint", &f.hint, false},
		{"glInvalidateFramebuffer", &f.invalidateFramebuffer, true},
		{"glIsEnabled", &f.isEnabled, false},
		{"glLineWidth", &f.lineWidth, false},
		{"glLinkProgram", &f.linkProgram, false},
		{"glMapBufferRange", &f.mapBufferRange, true},
		{"glObjectLabel", &f.objectLabel, true},
		{"glPixelStorei", &f.pixelStorei, false},
		{"glPolygonMode", &f.polygonMode, true},
		{"glPolygonOffset", &f.polygonOffset, false},
		{"glReadBuffer", &f.readBuffer, true},
		{"glReadPixels", &f.readPixels, false},
		{"glRenderbufferStorage", &f.renderbufferStorage, false},
		{"glRenderbufferStorageMultisample", &f.renderbufferStorageMultisample, true},
		{"glSampleCoverage", &f.sampleCoverage, false},
		{"glScissor", &f.scissor, false},
		{"glShaderSource", &f.shaderSource, false},
		{"glStencilFunc", &f.stencilFunc, false},
		{"glStencilFuncSeparate", &f.stencilFuncSeparate, false},
		{"glStencilMask", &f.stencilMask, false},
		{"glStencilMaskSeparate", &f.stencilMaskSeparate, false},
		{"glStencilOp", &f.stencilOp, false},
		{"glStencilOpSeparate", &f.stencilOpSeparate, false},
		{"glTexImage2D", &f.texImage2D, false},
		{"glTexImage3D", &f.texImage3D, true},
		{"glTexParameterf", &f.texParameterf, false},
		{"glTexParameteri", &f.texParameteri, false},
		{"glTexStorage2D", &f.texStorage2D, true},
		{"glTexSubImage2D", &f.texSubImage2D, false},
		{"glTexSubImage3D", &f.texSubImage3D, true},
		{"glUniform1f", &f.uniform1f, false},
		{"glUniform1fv", &f.uniform1fv, false},
		{"glUniform1i", &f.uniform1i, false},
		{"glUniform2f", &f.uniform2f, false},
		{"glUniform2fv", &f.uniform2fv, false},
		{"glUniform3f", &f.uniform3f, false},
		{"glUniform3fv", &f.uniform3fv, false},
		{"glUniform4f", &f.uniform4f, false},
		{"glUniform4fv", &f.uniform4fv, false},
		{"glUniformBlockBinding", &f.uniformBlockBinding, true},
		{"glUniformMatrix2fv", &f.uniformMatrix2fv, false},
		{"glUniformMatrix3fv", &f.uniformMatrix3fv, false},
		{"glUniformMatrix4fv", &f.uniformMatrix4fv, false},
		{"glUnmapBuffer", &f.unmapBuffer, true},
		{"glUseProgram", &f.useProgram, false},
		{"glVertexAttribDivisor", &f.vertexAttribDivisor, true},
		{"glVertexAttribPointer", &f.vertexAttribPointer, false},
		{"glViewport", &f.viewport, false},
	}
}
