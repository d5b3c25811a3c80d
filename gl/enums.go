// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ACTIVE_TEXTURE                        = 0x84e0
	ALPHA                                 = 0x1906
	ALREADY_SIGNALED                      = 0x911a
	ARRAY_BUFFER                          = 0x8892
	ARRAY_BUFFER_BINDING                  = 0x8894
	BACK                                  = 0x0405
	BLEND                                 = 0xbe2
	CLAMP_TO_EDGE                         = 0x812f
	COLOR_ATTACHMENT0                     = 0x8ce0
	COLOR_BUFFER_BIT                      = 0x4000
	COMPILE_STATUS                        = 0x8b81
	COMPRESSED_TEXTURE_FORMATS            = 0x86a3
	CONDITION_SATISFIED                   = 0x911c
	CONTEXT_FLAGS                         = 0x821e
	CONTEXT_FLAG_DEBUG_BIT                = 0x0002
	CONTEXT_COMPATIBILITY_PROFILE_BIT     = 0x0002
	CONTEXT_CORE_PROFILE_BIT              = 0x0001
	CONTEXT_PROFILE_MASK                  = 0x9126
	CULL_FACE                             = 0xb44
	DEPTH_BUFFER_BIT                      = 0x100
	DEPTH_ATTACHMENT                      = 0x8d00
	DEPTH_COMPONENT16                     = 0x81a5
	DEPTH_COMPONENT24                     = 0x81a6
	DEPTH_COMPONENT32F                    = 0x8cac
	DEPTH_TEST                            = 0xb71
	DITHER                                = 0xbd0
	DRAW_FRAMEBUFFER                      = 0x8ca9
	DST_COLOR                             = 0x306
	DYNAMIC_DRAW                          = 0x88e8
	DYNAMIC_READ                          = 0x88e9
	ELEMENT_ARRAY_BUFFER                  = 0x8893
	EXTENSIONS                            = 0x1f03
	FALSE                                 = 0
	FILL                                  = 0x1b02
	FLOAT                                 = 0x1406
	FRAGMENT_SHADER                       = 0x8b30
	FRAMEBUFFER                           = 0x8d40
	FRAMEBUFFER_ATTACHMENT_COLOR_ENCODING = 0x8210
	FRAMEBUFFER_BINDING                   = 0x8ca6
	FRAMEBUFFER_COMPLETE                  = 0x8cd5
	FRAMEBUFFER_SRGB                      = 0x8db9
	FRONT                                 = 0x0404
	FRONT_AND_BACK                        = 0x0408
	FUNC_ADD                              = 0x8006
	GREATER                               = 0x204
	GEQUAL                                = 0x206
	HALF_FLOAT                            = 0x140b
	INFO_LOG_LENGTH                       = 0x8b84
	INVALID_INDEX                         = ^uint(0)
	LEQUAL                                = 0x203
	LESS                                  = 0x201
	LINE                                  = 0x1b01
	LINEAR                                = 0x2601
	LINEAR_MIPMAP_LINEAR                  = 0x2703
	LINEAR_MIPMAP_NEAREST                 = 0x2701
	LINES                                 = 0x1
	LINE_STRIP                            = 0x3
	LINK_STATUS                           = 0x8b82
	LUMINANCE                             = 0x1909
	LUMINANCE_ALPHA                       = 0x190a
	MAP_READ_BIT                          = 0x0001
	MAP_WRITE_BIT                         = 0x0002
	MAJOR_VERSION                         = 0x821b
	MINOR_VERSION                         = 0x821c
	MAX_3D_TEXTURE_SIZE                   = 0x8073
	MAX_ARRAY_TEXTURE_LAYERS              = 0x88ff
	MAX_COLOR_ATTACHMENTS                 = 0x8cdf
	MAX_COMBINED_TEXTURE_IMAGE_UNITS      = 0x8b4d
	MAX_CUBE_MAP_TEXTURE_SIZE             = 0x851c
	MAX_RENDERBUFFER_SIZE                 = 0x84e8
	MAX_SAMPLES                           = 0x8d57
	MAX_TEXTURE_IMAGE_UNITS               = 0x8872
	MAX_TEXTURE_SIZE                      = 0xd33
	MAX_UNIFORM_BLOCK_SIZE                = 0x8a30
	MAX_VERTEX_ATTRIBS                    = 0x8869
	MIRRORED_REPEAT                       = 0x8370
	MULTISAMPLE                           = 0x809d
	NEAREST                               = 0x2600
	NICEST                                = 0x1102
	NO_ERROR                              = 0x0
	NONE                                  = 0x0
	NOTEQUAL                              = 0x205
	NUM_EXTENSIONS                        = 0x821d
	ONE                                   = 0x1
	ONE_MINUS_DST_ALPHA                   = 0x305
	ONE_MINUS_SRC_ALPHA                   = 0x303
	ONE_MINUS_SRC_COLOR                   = 0x301
	PACK_ALIGNMENT                        = 0xd05
	POINTS                                = 0x0
	POLYGON_OFFSET_FILL                   = 0x8037
	PROGRAM_BINARY_LENGTH                 = 0x8741
	QUERY_RESULT                          = 0x8866
	QUERY_RESULT_AVAILABLE                = 0x8867
	R16F                                  = 0x822d
	R8                                    = 0x8229
	READ_FRAMEBUFFER                      = 0x8ca8
	READ_ONLY                             = 0x88b8
	READ_WRITE                            = 0x88ba
	RED                                   = 0x1903
	RENDERER                              = 0x1f01
	RENDERBUFFER                          = 0x8d41
	RENDERBUFFER_BINDING                  = 0x8ca7
	RENDERBUFFER_HEIGHT                   = 0x8d43
	RENDERBUFFER_WIDTH                    = 0x8d42
	REPEAT                                = 0x2901
	RGB                                   = 0x1907
	RGB565                                = 0x8d62
	RGB8                                  = 0x8051
	RGBA                                  = 0x1908
	RGBA4                                 = 0x8056
	RGBA8                                 = 0x8058
	SAMPLES                               = 0x80a9
	SCISSOR_TEST                          = 0xc11
	SHADING_LANGUAGE_VERSION              = 0x8b8c
	SHORT                                 = 0x1402
	SIGNALED                              = 0x9119
	SRC_ALPHA                             = 0x302
	SRGB                                  = 0x8c40
	SRGB8                                 = 0x8c41
	SRGB8_ALPHA8                          = 0x8c43
	STATIC_DRAW                           = 0x88e4
	STENCIL_BUFFER_BIT                    = 0x00000400
	STENCIL_TEST                          = 0xb90
	STREAM_DRAW                           = 0x88e0
	SYNC_FLUSH_COMMANDS_BIT               = 0x00000001
	SYNC_GPU_COMMANDS_COMPLETE            = 0x9117
	TEXTURE_2D                            = 0xde1
	TEXTURE_3D                            = 0x806f
	TEXTURE_CUBE_MAP                      = 0x8513
	TEXTURE_MAG_FILTER                    = 0x2800
	TEXTURE_MIN_FILTER                    = 0x2801
	TEXTURE_WRAP_S                        = 0x2802
	TEXTURE_WRAP_T                        = 0x2803
	TEXTURE0                              = 0x84c0
	TEXTURE1                              = 0x84c1
	TIMEOUT_EXPIRED                       = 0x911b
	TRIANGLES                             = 0x4
	TRIANGLE_FAN                          = 0x6
	TRIANGLE_STRIP                        = 0x5
	TRUE                                  = 1
	UNIFORM_BUFFER                        = 0x8a11
	UNPACK_ALIGNMENT                      = 0xcf5
	UNSIGNED_BYTE                         = 0x1401
	UNSIGNED_INT                          = 0x1405
	UNSIGNED_INT_24_8                     = 0x84fa
	UNSIGNED_SHORT                        = 0x1403
	UNSIGNED_SHORT_4_4_4_4                = 0x8033
	UNSIGNED_SHORT_5_5_5_1                = 0x8034
	UNSIGNED_SHORT_5_6_5                  = 0x8363
	VENDOR                                = 0x1f00
	VERSION                               = 0x1f02
	VERTEX_SHADER                         = 0x8b31
	WAIT_FAILED                           = 0x911d
	WRITE_ONLY                            = 0x88b9
	ZERO                                  = 0x0

	// Error codes returned by GetError.
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	STACK_OVERFLOW                = 0x0503
	STACK_UNDERFLOW               = 0x0504
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506
	CONTEXT_LOST                  = 0x0507

	// KHR_debug.
	DEBUG_OUTPUT                   = 0x92e0
	DEBUG_OUTPUT_SYNCHRONOUS       = 0x8242
	DEBUG_SOURCE_API               = 0x8246
	DEBUG_SOURCE_WINDOW_SYSTEM     = 0x8247
	DEBUG_SOURCE_SHADER_COMPILER   = 0x8248
	DEBUG_SOURCE_THIRD_PARTY       = 0x8249
	DEBUG_SOURCE_APPLICATION       = 0x824a
	DEBUG_SOURCE_OTHER             = 0x824b
	DEBUG_TYPE_ERROR               = 0x824c
	DEBUG_TYPE_DEPRECATED_BEHAVIOR = 0x824d
	DEBUG_TYPE_UNDEFINED_BEHAVIOR  = 0x824e
	DEBUG_TYPE_PORTABILITY         = 0x824f
	DEBUG_TYPE_PERFORMANCE         = 0x8250
	DEBUG_TYPE_OTHER               = 0x8251
	DEBUG_TYPE_MARKER              = 0x8268
	DEBUG_TYPE_PUSH_GROUP          = 0x8269
	DEBUG_TYPE_POP_GROUP           = 0x826a
	DEBUG_SEVERITY_HIGH            = 0x9146
	DEBUG_SEVERITY_MEDIUM          = 0x9147
	DEBUG_SEVERITY_LOW             = 0x9148
	DEBUG_SEVERITY_NOTIFICATION    = 0x826b
	BUFFER                         = 0x82e0
	SHADER                         = 0x82e1
	PROGRAM                        = 0x82e2
	DONT_CARE                      = 0x1100
)

// TIMEOUT_IGNORED makes ClientWaitSync wait indefinitely.
const TIMEOUT_IGNORED = 0xffffffffffffffff
