package renderer

// The shader implements the same lighting model for every pipeline: Schlick
// fresnel plus a roughness-driven Blinn-Phong term, with light 0 directional,
// light 1 point, and light 2 spot.

const vertexShaderSource = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;

uniform mat4 uViewProj;
uniform mat4 uWorld;
uniform mat4 uTexTransform;
uniform mat4 uMatTransform;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vUV;

void main() {
	vec4 worldPos = uWorld * vec4(aPos, 1.0);
	vWorldPos = worldPos.xyz / worldPos.w;

	// Assumes no nonuniform world scale; reflections only negate an axis,
	// which this handles after normalization.
	vNormal = mat3(uWorld) * aNormal;

	vec4 uv = uMatTransform * uTexTransform * vec4(aUV, 0.0, 1.0);
	vUV = uv.xy;

	gl_Position = uViewProj * worldPos;
}
`

const fragmentShaderSource = `#version 410 core

struct Light {
	vec3 Strength;
	float FalloffStart;
	vec3 Direction;
	float FalloffEnd;
	vec3 Position;
	float SpotPower;
};

uniform vec4 uAmbientLight;
uniform Light uLights[3];
uniform vec3 uEyePos;

uniform vec4 uDiffuseAlbedo;
uniform vec3 uFresnelR0;
uniform float uRoughness;

uniform sampler2D uDiffuseTex;

in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vUV;

out vec4 fragColor;

float attenuation(float d, float falloffStart, float falloffEnd) {
	return clamp((falloffEnd - d) / (falloffEnd - falloffStart), 0.0, 1.0);
}

vec3 schlickFresnel(vec3 r0, vec3 normal, vec3 lightVec) {
	float cosIncident = clamp(dot(normal, lightVec), 0.0, 1.0);
	float f0 = 1.0 - cosIncident;
	return r0 + (1.0 - r0) * (f0 * f0 * f0 * f0 * f0);
}

vec3 blinnPhong(vec4 albedo, vec3 strength, vec3 lightVec, vec3 normal, vec3 toEye) {
	float shininess = (1.0 - uRoughness) * 256.0;
	vec3 halfVec = normalize(toEye + lightVec);

	float roughnessFactor = (shininess + 8.0) / 8.0 *
		pow(max(dot(halfVec, normal), 0.0), shininess);
	vec3 specAlbedo = schlickFresnel(uFresnelR0, halfVec, lightVec) * roughnessFactor;

	// Scale specular into LDR range.
	specAlbedo = specAlbedo / (specAlbedo + 1.0);

	return (albedo.rgb + specAlbedo) * strength;
}

vec3 directionalLight(Light l, vec4 albedo, vec3 normal, vec3 toEye) {
	vec3 lightVec = -normalize(l.Direction);
	float ndotl = max(dot(lightVec, normal), 0.0);
	return blinnPhong(albedo, l.Strength * ndotl, lightVec, normal, toEye);
}

vec3 pointLight(Light l, vec4 albedo, vec3 pos, vec3 normal, vec3 toEye) {
	vec3 lightVec = l.Position - pos;
	float d = length(lightVec);
	if (d > l.FalloffEnd) {
		return vec3(0.0);
	}
	lightVec /= d;

	float ndotl = max(dot(lightVec, normal), 0.0);
	vec3 strength = l.Strength * ndotl * attenuation(d, l.FalloffStart, l.FalloffEnd);
	return blinnPhong(albedo, strength, lightVec, normal, toEye);
}

vec3 spotLight(Light l, vec4 albedo, vec3 pos, vec3 normal, vec3 toEye) {
	vec3 lightVec = l.Position - pos;
	float d = length(lightVec);
	if (d > l.FalloffEnd) {
		return vec3(0.0);
	}
	lightVec /= d;

	float ndotl = max(dot(lightVec, normal), 0.0);
	vec3 strength = l.Strength * ndotl * attenuation(d, l.FalloffStart, l.FalloffEnd);
	float spotFactor = pow(max(dot(-lightVec, normalize(l.Direction)), 0.0), l.SpotPower);
	return blinnPhong(albedo, strength * spotFactor, lightVec, normal, toEye);
}

void main() {
	vec4 albedo = texture(uDiffuseTex, vUV) * uDiffuseAlbedo;

	vec3 normal = normalize(vNormal);
	vec3 toEye = normalize(uEyePos - vWorldPos);

	vec4 ambient = uAmbientLight * albedo;
	vec3 direct = directionalLight(uLights[0], albedo, normal, toEye) +
		pointLight(uLights[1], albedo, vWorldPos, normal, toEye) +
		spotLight(uLights[2], albedo, vWorldPos, normal, toEye);

	fragColor = vec4(ambient.rgb + direct, albedo.a);
}
`
