package sqlinline

const QInsertAsset = `--sql 11fed45b-3160-4653-86e4-c4c053debc4d
insert into assets(
  id,
  prompt,
  category,
  style,
  dimensions,
  model,
  storage_key,
  mime,
  bytes,
  width,
  height,
  color_palette,
  country,
  created_at
) values (
  $1::text,
  $2::text,
  $3::text,
  $4::text,
  $5::text,
  $6::text,
  $7::text,
  $8::text,
  $9::bigint,
  $10::int,
  $11::int,
  $12::jsonb,
  $13::text,
  now()
);
`

const QListAssets = `--sql 6c3fcf23-8d18-4360-a723-e8e37e1ad042
select id, prompt, category, style, dimensions, model, storage_key, mime, bytes, width, height, color_palette, country, created_at
from assets
order by created_at desc
limit $1::int;
`

const QSelectAssetByID = `--sql 88f8b415-5da2-4919-8fe1-b614e372a08b
select id, storage_key, mime
from assets
where id = $1::text
limit 1;
`
