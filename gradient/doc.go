// Package gradient provides the least-squares gradient oracle consumed
// by the SVR-GraphIHT driver.
//
// The oracle is a pure view over an immutable dataset — a design matrix
// X (rows = observations, columns = graph nodes) and a measurement
// vector y — with loss f(w) = ‖y − Xw‖². It holds no mutable state, so
// one *LeastSquares may serve any number of concurrent solves.
//
// Operations:
//
//	– Gradient(w, rows):     mini-batch gradient −2·Xᵀ_R (y_R − X_R w)
//	                         over the given row block.
//	– FullGradient(ctx, w):  the batch gradient over every observation,
//	                         summed from per-chunk partials computed in
//	                         parallel. Partials are accumulated in chunk
//	                         order, so the result is deterministic for a
//	                         fixed chunk layout.
//	– Objective(w):          residual sum of squares ‖y − Xw‖².
//	– ResidualNorm(w):       ‖y − Xw‖.
//
// Linear algebra is gonum's: the dataset lives in mat.Dense/mat.VecDense
// and the hot loops use floats.Dot / floats.AddScaled over raw row
// views, avoiding per-row allocation.
package gradient
